package zerodata

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/uyen-nguyen-190304/grhverify/grh"
)

// WriteIntervals writes intervals to path in the "γ⁻ γ⁺" line format read
// by LoadIntervals, preserving order. Floats are emitted with the shortest
// representation that round-trips exactly.
func WriteIntervals(path string, intervals []grh.Interval) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("zerodata: create intervals file: %w", err)
	}

	w := bufio.NewWriter(file)
	for _, iv := range intervals {
		fmt.Fprintf(w, "%s %s\n",
			strconv.FormatFloat(iv.GammaMinus, 'g', -1, 64),
			strconv.FormatFloat(iv.GammaPlus, 'g', -1, 64))
	}

	return flushAndClose(w, file, "intervals")
}

// WriteKronecker writes every index of chi to path in the "n χ_d(n)"
// format read by LoadKronecker.
func WriteKronecker(path string, chi grh.CharacterSeq) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("zerodata: create Kronecker file: %w", err)
	}

	w := bufio.NewWriter(file)
	for k := 1; k <= chi.Len(); k++ {
		v, err := chi.At(k)
		if err != nil {
			file.Close()

			return err
		}
		fmt.Fprintf(w, "%d %d\n", k, v)
	}

	return flushAndClose(w, file, "Kronecker")
}

// WriteVonMangoldt writes every index of lambda to path in the "n Λ(n)"
// format read by LoadVonMangoldt.
func WriteVonMangoldt(path string, lambda grh.VonMangoldtSeq) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("zerodata: create von Mangoldt file: %w", err)
	}

	w := bufio.NewWriter(file)
	for k := 1; k <= lambda.Len(); k++ {
		v, err := lambda.At(k)
		if err != nil {
			file.Close()

			return err
		}
		fmt.Fprintf(w, "%d %s\n", k, strconv.FormatFloat(v, 'g', -1, 64))
	}

	return flushAndClose(w, file, "von Mangoldt")
}

// flushAndClose flushes the buffered writer and closes the file, reporting
// the first failure.
func flushAndClose(w *bufio.Writer, file *os.File, kind string) error {
	if err := w.Flush(); err != nil {
		file.Close()

		return fmt.Errorf("zerodata: write %s file: %w", kind, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("zerodata: close %s file: %w", kind, err)
	}

	return nil
}
