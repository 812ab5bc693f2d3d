// Command regen generates the register accessors of package chip from an SVD device description.
//
//	regen -in testdata/ATSAMD21G18A_clocks.svd -out ../../chip
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"omibyte.io/clocktree/cmd/regen/generator"
	"omibyte.io/clocktree/cmd/regen/svd"
)

var (
	input       string
	outputDir   string
	pkg         string
	peripherals string
)

func init() {
	flag.StringVar(&input, "in", "", "input SVD file(s), may be a glob")
	flag.StringVar(&outputDir, "out", "", "output directory")
	flag.StringVar(&pkg, "pkg", "chip", "package name of the generated file")
	flag.StringVar(&peripherals, "only", "", "comma separated list of peripherals to generate")
}

func main() {
	flag.Parse()

	fnames, err := filepath.Glob(input)
	if err != nil {
		log.Fatal(err)
	}
	if len(fnames) == 0 {
		log.Fatalf("no input matches %q", input)
	}

	var only []string
	if len(peripherals) > 0 {
		only = strings.Split(peripherals, ",")
	}

	for _, fname := range fnames {
		if strings.ToLower(filepath.Ext(fname)) != ".svd" {
			log.Fatalf("Unsupported file type %s", filepath.Ext(fname))
		}

		device, err := svd.ReadFile(fname)
		if err != nil {
			log.Fatalf("%s: %v", fname, err)
		}

		fmt.Println("Generating register accessors for the following machine:")
		fmt.Printf("CPU:\t\t%s\n", device.CPU.Name)
		fmt.Printf("Device:\t\t%s (%s)\n", device.Name, device.Series)
		fmt.Printf("Endian:\t\t%s\n", device.CPU.Endian)

		// Create the output directory
		if err = os.MkdirAll(outputDir, 0750); err != nil {
			log.Fatal("file io error: ", err)
		}

		out, err := generator.New(device, pkg, only...).WriteFile(outputDir)
		if err != nil {
			log.Fatal("generator error: ", err)
		}
		fmt.Println("Wrote", out)
	}
	fmt.Println("Done.")
}
