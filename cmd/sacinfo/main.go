// Command sacinfo lists the essential header values of SAC files.
//
// Usage:
//
//	sacinfo file.sac [more.sac ...]
//	sacinfo -v file.sac     # include picks, station/event geometry
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	sac "github.com/tphakala/go-sac"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] file.sac [more.sac ...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}

	for _, path := range args {
		rec, err := sac.ReadFile(path)
		if err != nil {
			return err
		}
		printInfo(rec, *verbose)
	}
	return nil
}

func defined(v float32) bool { return v != float32(sac.Undefined) }

func printInfo(rec *sac.Record, verbose bool) {
	fmt.Printf("%s:\n", rec.Filename())
	fmt.Printf("  id:      %s\n", rec.NSLC())
	fmt.Printf("  type:    %s", rec.FileType())
	if rec.Swapped() {
		fmt.Printf(" (byte swapped)")
	}
	fmt.Println()
	fmt.Printf("  npts:    %d\n", rec.Npts)
	fmt.Printf("  delta:   %g\n", rec.Delta)
	fmt.Printf("  range:   b=%g e=%g\n", rec.B, rec.E)
	fmt.Printf("  extrema: min=%g max=%g mean=%g\n", rec.Depmin, rec.Depmax, rec.Depmen)

	if t, err := rec.Time(); err == nil {
		fmt.Printf("  ref:     %s\n", t.Format("2006-01-02 (002) 15:04:05.000"))
	}

	if !verbose {
		return
	}
	if defined(rec.Stla) && defined(rec.Stlo) {
		fmt.Printf("  station: lat=%g lon=%g elev=%g\n", rec.Stla, rec.Stlo, rec.Stel)
	}
	if defined(rec.Evla) && defined(rec.Evlo) {
		fmt.Printf("  event:   lat=%g lon=%g depth=%g\n", rec.Evla, rec.Evlo, rec.Evdp)
	}
	if defined(rec.Dist) {
		fmt.Printf("  dist:    %g km (%g deg) az=%g baz=%g\n",
			rec.Dist, rec.Gcarc, rec.Az, rec.Baz)
	}
	for _, mark := range []string{"o", "a", "t0", "t1", "t2", "t3", "t4",
		"t5", "t6", "t7", "t8", "t9"} {
		if t, err := rec.DateTime(mark); err == nil {
			fmt.Printf("  pick %-3s %s\n", mark+":", t.Format("15:04:05.000"))
		}
	}
}
