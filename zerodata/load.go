package zerodata

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/uyen-nguyen-190304/grhverify/grh"
)

// LoadIntervals reads zero-bracketing intervals from path, one "γ⁻ γ⁺"
// pair per line. Lines that do not begin with two parseable floats are
// skipped. The file's line order is preserved: callers relying on Verify's
// minimal-prefix guarantee must supply a height-sorted file.
func LoadIntervals(path string) ([]grh.Interval, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("zerodata: open intervals file: %w", err)
	}
	defer file.Close()

	var intervals []grh.Interval
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		gammaMinus, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			continue
		}
		gammaPlus, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			continue
		}
		intervals = append(intervals, grh.Interval{GammaMinus: gammaMinus, GammaPlus: gammaPlus})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("zerodata: read intervals file: %w", err)
	}

	return intervals, nil
}

// LoadKronecker reads "n χ_d(n)" integer pairs from path into a dense
// 1-based CharacterSeq sized to the largest n present. Malformed lines,
// indices below 1, and values outside {-1, 0, 1} are skipped; a later
// duplicate n overwrites an earlier one; indices absent from the file load
// as χ_d(n) = 0.
func LoadKronecker(path string) (grh.CharacterSeq, error) {
	file, err := os.Open(path)
	if err != nil {
		return grh.CharacterSeq{}, fmt.Errorf("zerodata: open Kronecker file: %w", err)
	}
	defer file.Close()

	byIndex := make(map[int]int8)
	maxN := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil || n < 1 {
			continue
		}
		chi, err := strconv.Atoi(fields[1])
		if err != nil || chi < -1 || chi > 1 {
			continue
		}
		byIndex[n] = int8(chi)
		if n > maxN {
			maxN = n
		}
	}
	if err := scanner.Err(); err != nil {
		return grh.CharacterSeq{}, fmt.Errorf("zerodata: read Kronecker file: %w", err)
	}

	vals := make([]int8, maxN)
	for n, chi := range byIndex {
		vals[n-1] = chi
	}

	return grh.NewCharacterSeq(vals)
}

// LoadVonMangoldt reads "n Λ(n)" pairs from path into a dense 1-based
// VonMangoldtSeq, with the same skip, overwrite, and gap-fill rules as
// LoadKronecker. Negative or NaN Λ values are treated as malformed.
func LoadVonMangoldt(path string) (grh.VonMangoldtSeq, error) {
	file, err := os.Open(path)
	if err != nil {
		return grh.VonMangoldtSeq{}, fmt.Errorf("zerodata: open von Mangoldt file: %w", err)
	}
	defer file.Close()

	byIndex := make(map[int]float64)
	maxN := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil || n < 1 {
			continue
		}
		lambda, err := strconv.ParseFloat(fields[1], 64)
		if err != nil || lambda < 0 || math.IsNaN(lambda) {
			continue
		}
		byIndex[n] = lambda
		if n > maxN {
			maxN = n
		}
	}
	if err := scanner.Err(); err != nil {
		return grh.VonMangoldtSeq{}, fmt.Errorf("zerodata: read von Mangoldt file: %w", err)
	}

	vals := make([]float64, maxN)
	for n, lambda := range byIndex {
		vals[n-1] = lambda
	}

	return grh.NewVonMangoldtSeq(vals)
}
