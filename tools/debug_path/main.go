package main

import (
	"fmt"
	"os"
	"strconv"

	calc "github.com/rpgo/enoughcalc/internal/calculation"
	"github.com/rpgo/enoughcalc/internal/config"
	"github.com/rpgo/enoughcalc/internal/output"
)

// debug_path replays one Monte Carlo path as cashflow CSV.
func main() {
	if len(os.Args) < 4 {
		fmt.Println("usage: debug_path <input-file> <seed> <path-index>")
		return
	}
	in, err := config.NewInputParser().LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	seed, err := strconv.ParseInt(os.Args[2], 10, 64)
	if err != nil {
		panic(err)
	}
	idx, err := strconv.Atoi(os.Args[3])
	if err != nil {
		panic(err)
	}

	src := calc.RandomRates{Source: calc.NewPathSource(seed, idx), Params: calc.DrawParamsFrom(*in)}
	p := calc.NewPathProjector(*in).Project(src, true)
	if err := output.WriteCashflowCSV(os.Stdout, p.Rows); err != nil {
		panic(err)
	}
	if p.Depleted {
		fmt.Fprintf(os.Stderr, "depleted at age %d\n", p.DepletionAge)
	} else {
		fmt.Fprintf(os.Stderr, "ending balance %s\n", output.FormatCurrency(p.Final().TotalBalance()))
	}
}
