package swiss_test

import (
	"fmt"

	"github.com/mkeverything/mktour-pairing/swiss"
)

func ExampleGenerateWeightedPairing() {
	players := []swiss.Player{
		{ID: "alice", PairingNumber: 0, Score: swiss.Score{Half: 2}},
		{ID: "bob", PairingNumber: 1, Score: swiss.Score{Half: 2}},
		{ID: "carol", PairingNumber: 2, Score: swiss.Score{Half: 0}},
		{ID: "dave", PairingNumber: 3, Score: swiss.Score{Half: 0}},
	}

	res, err := swiss.GenerateWeightedPairing(players, 1)
	if err != nil {
		panic(err)
	}
	fmt.Println(len(res.Pairs), res.Bye == nil)
	// Output: 2 true
}
