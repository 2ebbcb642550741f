package optim_test

import (
	"fmt"

	"github.com/descent-ml/descent/ad"
	"github.com/descent-ml/descent/optim"
)

func ExampleGradientDescent_Minimize() {
	square := func(x []ad.MultiDual) ad.MultiDual {
		return x[0].Mul(x[0])
	}

	gd, err := optim.NewGradientDescent(optim.Config{StepSize: 0.1})
	if err != nil {
		panic(err)
	}

	// Two steps on x² from 5: the gradient at 5 is 10, so the next
	// iterate is 5 - 0.1·10 = 4. Snapshots are taken before each
	// update, so the fully updated point 3.2 is not recorded.
	traj, err := gd.Minimize(square, []float64{5}, 2)
	if err != nil {
		panic(err)
	}

	fmt.Println(traj.States())
	// Output: [[5] [4]]
}
