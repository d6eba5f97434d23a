// Package testfixture writes a synthetic, correctly-shaped data directory
// so tests can exercise Install/Step end-to-end without access to the real
// NASA F-16 aerodynamic tables (no such data exists in this repository's
// lineage — only the loader/format contract does).
package testfixture

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var axisFiles = map[string]int{
	"ALPHA1.dat": 20,
	"ALPHA2.dat": 14,
	"BETA1.dat":  19,
	"DH1.dat":    5,
	"DH2.dat":    3,
}

// coefficientFile names one of the 43 coefficient tables and the sizes of
// its declared dimensions, fastest-varying first.
type coefficientFile struct {
	name string
	dims []int
}

var coefficientFiles = []coefficientFile{
	{"CX0120_ALPHA1_BETA1_DH1_201.dat", []int{20, 19, 5}},
	{"CZ0120_ALPHA1_BETA1_DH1_301.dat", []int{20, 19, 5}},
	{"CM0120_ALPHA1_BETA1_DH1_101.dat", []int{20, 19, 5}},
	{"CY0320_ALPHA1_BETA1_401.dat", []int{20, 19}},
	{"CN0120_ALPHA1_BETA1_DH2_501.dat", []int{20, 19, 3}},
	{"CL0120_ALPHA1_BETA1_DH2_601.dat", []int{20, 19, 3}},
	{"CX0820_ALPHA2_BETA1_202.dat", []int{14, 19}},
	{"CZ0820_ALPHA2_BETA1_302.dat", []int{14, 19}},
	{"CM0820_ALPHA2_BETA1_102.dat", []int{14, 19}},
	{"CY0820_ALPHA2_BETA1_402.dat", []int{14, 19}},
	{"CN0820_ALPHA2_BETA1_502.dat", []int{14, 19}},
	{"CL0820_ALPHA2_BETA1_602.dat", []int{14, 19}},
	{"CX1120_ALPHA1_204.dat", []int{20}},
	{"CZ1120_ALPHA1_304.dat", []int{20}},
	{"CM1120_ALPHA1_104.dat", []int{20}},
	{"CY1220_ALPHA1_408.dat", []int{20}},
	{"CY1320_ALPHA1_406.dat", []int{20}},
	{"CN1320_ALPHA1_506.dat", []int{20}},
	{"CN1220_ALPHA1_508.dat", []int{20}},
	{"CL1220_ALPHA1_608.dat", []int{20}},
	{"CL1320_ALPHA1_606.dat", []int{20}},
	{"CX1420_ALPHA2_205.dat", []int{14}},
	{"CY1620_ALPHA2_407.dat", []int{14}},
	{"CY1520_ALPHA2_409.dat", []int{14}},
	{"CZ1420_ALPHA2_305.dat", []int{14}},
	{"CL1620_ALPHA2_607.dat", []int{14}},
	{"CL1520_ALPHA2_609.dat", []int{14}},
	{"CM1420_ALPHA2_105.dat", []int{14}},
	{"CN1620_ALPHA2_507.dat", []int{14}},
	{"CN1520_ALPHA2_509.dat", []int{14}},
	{"CY0720_ALPHA1_BETA1_405.dat", []int{20, 19}},
	{"CN0720_ALPHA1_BETA1_503.dat", []int{20, 19}},
	{"CL0720_ALPHA1_BETA1_603.dat", []int{20, 19}},
	{"CY0620_ALPHA1_BETA1_403.dat", []int{20, 19}},
	{"CY0920_ALPHA2_BETA1_404.dat", []int{14, 19}},
	{"CN0620_ALPHA1_BETA1_504.dat", []int{20, 19}},
	{"CN0920_ALPHA2_BETA1_505.dat", []int{14, 19}},
	{"CL0620_ALPHA1_BETA1_604.dat", []int{20, 19}},
	{"CL0920_ALPHA2_BETA1_605.dat", []int{14, 19}},
	{"CN9999_ALPHA1_brett.dat", []int{20}},
	{"CL9999_ALPHA1_brett.dat", []int{20}},
	{"CM9999_ALPHA1_brett.dat", []int{20}},
	{"ETA_DH1_brett.dat", []int{5}},
}

// Write populates dir with every axis and coefficient file the catalog
// loader expects. Axis points are evenly spaced and strictly increasing;
// coefficient values are deterministic (scaled by linear index) so that
// exact-grid-node interpolation has a known expected value.
func Write(dir string) error {
	for name, n := range axisFiles {
		pts := make([]float64, n)
		lo, hi := axisRange(name)
		step := (hi - lo) / float64(n-1)
		for i := range pts {
			pts[i] = lo + step*float64(i)
		}
		if err := writeDoubles(filepath.Join(dir, name), pts); err != nil {
			return err
		}
	}
	for _, cf := range coefficientFiles {
		size := 1
		for _, d := range cf.dims {
			size *= d
		}
		data := make([]float64, size)
		for i := range data {
			data[i] = float64(i) * 0.001
		}
		if err := writeDoubles(filepath.Join(dir, cf.name), data); err != nil {
			return err
		}
	}
	return nil
}

func axisRange(name string) (lo, hi float64) {
	switch name {
	case "ALPHA1.dat":
		return -10, 45
	case "ALPHA2.dat":
		return -10, 45
	case "BETA1.dat":
		return -30, 30
	case "DH1.dat":
		return -25, 25
	case "DH2.dat":
		return -25, 25
	default:
		return 0, 1
	}
}

func writeDoubles(path string, data []float64) error {
	var b strings.Builder
	for _, v := range data {
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		b.WriteString("\n")
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// MustWrite is Write, panicking on failure — for use in test helpers where
// the caller already wraps setup in require.NoError via the returned dir.
func MustWrite(dir string) {
	if err := Write(dir); err != nil {
		panic(fmt.Sprintf("testfixture: %v", err))
	}
}
