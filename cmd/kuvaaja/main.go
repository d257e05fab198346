package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"gioui.org/app"
	"github.com/vsariola/kuvaaja/graph"
	"github.com/vsariola/kuvaaja/graph/gioui"
)

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
var memprofile = flag.String("memprofile", "", "write memory profile to `file`")

func main() {
	flag.Parse()
	var f *os.File
	if *cpuprofile != "" {
		var err error
		f, err = os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
	}
	preferences := gioui.MakePreferences()
	model := graph.NewModel(preferences.Graph)
	if a := flag.Args(); len(a) > 0 {
		if err := model.SetExpression(a[0]); err != nil {
			fmt.Fprintf(os.Stderr, "invalid expression %q: %v\n", a[0], err)
			os.Exit(1)
		}
	}
	grapher := gioui.NewGrapher(model, preferences)
	go func() {
		err := grapher.Main()
		if *cpuprofile != "" {
			pprof.StopCPUProfile()
			f.Close()
		}
		if *memprofile != "" {
			f, err := os.Create(*memprofile)
			if err != nil {
				log.Fatal("could not create memory profile: ", err)
			}
			defer f.Close() // error handling omitted for example
			runtime.GC()    // get up-to-date statistics
			if err := pprof.WriteHeapProfile(f); err != nil {
				log.Fatal("could not write memory profile: ", err)
			}
		}
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}
