package main

// This is an example of using PPL as a library in a Go application

import (
	"bytes"
	"fmt"
	"os"

	"github.com/phroun/ppl"
)

func main() {
	ip := ppl.New(&ppl.Config{
		Debug:  false,
		Stdout: os.Stdout,
	})

	// LEN list n  ->  n := number of top-level elements in list
	ip.RegisterInstruction("LEN", 2, func(ctx *ppl.Context) (ppl.Result, error) {
		l, err := ctx.Table().List(ctx.Args[0])
		if err != nil {
			return nil, err
		}
		if err := ctx.Table().SetInteger(ctx.Args[1], int64(l.Len())); err != nil {
			return nil, err
		}
		return ppl.Advance{}, nil
	})

	// SUM list n  ->  n := sum of the integers in list, nested lists included
	ip.RegisterInstruction("SUM", 2, func(ctx *ppl.Context) (ppl.Result, error) {
		l, err := ctx.Table().List(ctx.Args[0])
		if err != nil {
			return nil, err
		}
		if err := ctx.Table().SetInteger(ctx.Args[1], sum(l)); err != nil {
			return nil, err
		}
		return ppl.Advance{}, nil
	})

	fmt.Println("=== PPL Embedding Examples ===")

	// Example 1: Custom instructions
	fmt.Println("--- Example 1: LEN and SUM ---")
	ip.Execute(`
LIST l
LIST inner
INTEGER v
INTEGER n
ASSIGN v 4
MERGE v inner
ASSIGN v 5
MERGE v l
MERGE inner l
LEN l n
PRINT n
SUM l n
PRINT n
HLT`)
	fmt.Println()

	// Example 2: Inspecting the outcome of a faulting program
	fmt.Println("--- Example 2: Fault handling ---")
	var out bytes.Buffer
	quiet := ppl.New(&ppl.Config{Stdout: &out})
	outcome := quiet.Execute("LIST l\nHEAD l x\n")
	if outcome.Status == ppl.StatusFaulted {
		fmt.Printf("Faulted on line %d after %d steps: %v\n", outcome.FaultLine, outcome.Steps, outcome.Fault)
	}
	fmt.Println()

	// Example 3: Driving an engine step by step
	fmt.Println("--- Example 3: Stepping ---")
	engine := quiet.NewEngine(ppl.SplitProgram("INTEGER x\nASSIGN x 3\nCHS x\nHLT"))
	for engine.Step() {
		x, err := engine.Table().Integer("x")
		if err == nil {
			fmt.Printf("pc=%d x=%d\n", engine.PC(), x)
		}
	}
	fmt.Printf("Stopped: %s\n", engine.Status())
}

func sum(l *ppl.ListValue) int64 {
	var total int64
	for _, e := range l.Elements() {
		total += ppl.MatchElement(e,
			func(i ppl.Integer) int64 { return int64(i) },
			sum,
		)
	}
	return total
}
