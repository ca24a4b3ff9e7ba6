package portfolio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/portfolio-lots/date"
)

// This file contains code to persist a portfolio in a flat text format:
//
//	line 1:   the portfolio name
//	line 2..: SYMBOL=QUANTITY,DATE one line per lot
//
// Lots are written in holdings order. Prices are never persisted: decoded lots
// have zero prices.

// Encode writes p to w.
func Encode(w io.Writer, p *Portfolio) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, p.name)
	for _, symbol := range p.holdings.symbols {
		for _, lot := range p.holdings.lots[symbol] {
			fmt.Fprintf(bw, "%s=%s,%s\n", symbol, lot.Quantity, lot.Date)
		}
	}
	return bw.Flush()
}

// Decode reads a portfolio from r.
func Decode(r io.Reader, opts ...Option) (*Portfolio, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: missing name", ErrMalformedState)
	}
	name := strings.TrimRight(scanner.Text(), "\r")
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: missing name", ErrMalformedState)
	}

	h := NewHoldings()
	for i := 2; scanner.Scan(); i++ {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		symbol, lot, err := decodeLot(line)
		if err == nil {
			err = h.Add(symbol, lot)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d %q: %v", ErrMalformedState, i, line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	p := NewWithHoldings(name, h, opts...)
	return p, nil
}

// decodeLot parses a single SYMBOL=QUANTITY,DATE line.
func decodeLot(line string) (string, Lot, error) {
	symbol, rest, ok := strings.Cut(line, "=")
	if !ok {
		return "", Lot{}, errors.New("missing '='")
	}
	qty, day, ok := strings.Cut(rest, ",")
	if !ok {
		return "", Lot{}, errors.New("missing ','")
	}
	q, err := ParseQuantity(qty)
	if err != nil {
		return "", Lot{}, fmt.Errorf("invalid quantity %q: %w", qty, err)
	}
	on, err := date.Parse(day)
	if err != nil {
		return "", Lot{}, err
	}
	return symbol, NewLot(on, q), nil
}

// LoadFile reads a portfolio from a file.
func LoadFile(filename string, opts ...Option) (*Portfolio, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := Decode(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading portfolio %q: %w", filename, err)
	}
	return p, nil
}

// SaveFile writes a portfolio into a file, replacing it.
func SaveFile(filename string, p *Portfolio) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := Encode(f, p); err != nil {
		f.Close()
		return fmt.Errorf("error saving portfolio %q: %w", filename, err)
	}
	return f.Close()
}
