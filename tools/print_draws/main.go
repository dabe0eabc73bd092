package main

import (
	"flag"
	"fmt"

	"github.com/rpgo/enoughcalc/internal/calculation"
	"github.com/rpgo/enoughcalc/internal/domain"
)

func main() {
	seed := flag.Int64("seed", 1, "base seed")
	path := flag.Int("path", 0, "path index")
	n := flag.Int("n", 10, "number of years to draw")
	flag.Parse()

	params := calculation.DrawParamsFrom(domain.DefaultInputs())
	src := calculation.NewPathSource(*seed, *path)
	fmt.Println("Year,Return,Inflation")
	for i := 0; i < *n; i++ {
		r, infl := calculation.Draw(src, params)
		fmt.Printf("%d,%.6f,%.6f\n", i+1, r, infl)
	}
}
