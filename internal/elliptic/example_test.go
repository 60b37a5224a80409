package elliptic_test

import (
	"errors"
	"fmt"

	"github.com/GriffinCanCode/elliptic/internal/elliptic"
)

func ExampleEllipticK() {
	k, _ := elliptic.EllipticK(0.5)
	fmt.Printf("%.12f\n", k)
	// Output: 1.854074677301
}

func ExampleEllipj() {
	k, _ := elliptic.EllipticK(0.5)
	j, err := elliptic.Ellipj(k, 0.5)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("sn=%.6f dn=%.6f\n", j.Sn, j.Dn)

	_, err = elliptic.Ellipj(1, 1.5)
	fmt.Println(errors.Is(err, elliptic.ErrDomain))
	// Output:
	// sn=1.000000 dn=0.707107
	// true
}

func ExampleJacobiSn() {
	for _, t := range []float64{0, 0.25, 0.75} {
		x, _ := elliptic.JacobiSn(0.5, t, 1)
		fmt.Printf("%.4f\n", x)
	}

	_, err := elliptic.JacobiSn(1, 0, 1)
	fmt.Println(err)
	// Output:
	// 0.0000
	// 1.0000
	// -1.0000
	// jacobiSn: elliptic: shape parameter out of range (value=1)
}
