// fieldbench times the fp field operations and renders the results as
// an interactive HTML bar chart, next to a plain-text table on stdout.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/0xKanekiKen/rescue-prime/fp"
	"github.com/0xKanekiKen/rescue-prime/prof"
)

// sink defeats dead-code elimination of the measured loops.
var sink fp.Element

type op struct {
	name  string
	iters int
	run   func(n int) fp.Element
}

func ops(light, heavy int) []op {
	x := fp.New(0x123456789ABCDEF0)
	y := fp.New(fp.Modulus - 12345)
	pow := fp.New(fp.Modulus - 2)
	hi, lo := uint64(0xFFFFFFFE00000001), uint64(0x123456789ABCDEF0)

	return []op{
		{"Add", light, func(n int) fp.Element {
			r := x
			for i := 0; i < n; i++ {
				r = r.Add(y)
			}
			return r
		}},
		{"Sub", light, func(n int) fp.Element {
			r := x
			for i := 0; i < n; i++ {
				r = r.Sub(y)
			}
			return r
		}},
		{"Double", light, func(n int) fp.Element {
			r := x
			for i := 0; i < n; i++ {
				r = r.Double()
			}
			return r
		}},
		{"Mul", light, func(n int) fp.Element {
			r := x
			for i := 0; i < n; i++ {
				r = r.Mul(y)
			}
			return r
		}},
		{"Square", light, func(n int) fp.Element {
			r := x
			for i := 0; i < n; i++ {
				r = r.Square()
			}
			return r
		}},
		{"Reduce", light, func(n int) fp.Element {
			var r fp.Element
			for i := 0; i < n; i++ {
				r = fp.Reduce(hi, lo)
			}
			return r
		}},
		{"Exp", heavy, func(n int) fp.Element {
			var r fp.Element
			for i := 0; i < n; i++ {
				r = x.Exp(pow)
			}
			return r
		}},
		{"Inv", heavy, func(n int) fp.Element {
			var r fp.Element
			for i := 0; i < n; i++ {
				r = x.Inv()
			}
			return r
		}},
		{"Bytes", light, func(n int) fp.Element {
			var r fp.Element
			for i := 0; i < n; i++ {
				buf := x.Bytes()
				r, _ = fp.FromBytes(buf[:])
			}
			return r
		}},
	}
}

func main() {
	outPath := flag.String("out", "fieldbench.html", "output HTML file")
	light := flag.Int("iters", 1<<22, "iterations per sample for cheap ops")
	heavy := flag.Int("heavy-iters", 1<<16, "iterations per sample for Exp/Inv")
	samples := flag.Int("samples", 8, "samples per operation")
	flag.Parse()

	list := ops(*light, *heavy)
	for _, o := range list {
		for s := 0; s < *samples; s++ {
			start := time.Now()
			sink = o.run(o.iters)
			prof.Track(start, o.name)
		}
	}
	means := prof.MeanByLabel(prof.SnapshotAndReset())

	names := make([]string, 0, len(list))
	items := make([]opts.BarData, 0, len(list))
	fmt.Printf("%-8s %12s\n", "op", "ns/op")
	for _, o := range list {
		nsPerOp := float64(means[o.name].Nanoseconds()) / float64(o.iters)
		fmt.Printf("%-8s %12.2f\n", o.name, nsPerOp)
		names = append(names, o.name)
		items = append(items, opts.BarData{Value: nsPerOp})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Goldilocks field operation latency",
			Subtitle: fmt.Sprintf("mean of %d samples", *samples),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "ns/op", Type: "value"}),
	)
	bar.SetXAxis(names).AddSeries("ns/op", items)

	page := components.NewPage().SetPageTitle("fp operation latency")
	page.AddCharts(bar)

	f, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		fmt.Fprintf(os.Stderr, "render error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *outPath)
}
