package gold_test

import (
	"fmt"

	"github.com/arcbound/autolearn/gold"
)

// ExampleGold infers a 3-state DFA separating the given positive and
// negative samples over the alphabet {a, b}.
func ExampleGold() {
	sPlus := []string{"bb", "abb", "bba", "bbb", "babb"}
	sMinus := []string{"", "a", "ba"}

	g, ok, err := gold.Gold(sPlus, sMinus, []byte("ab"))
	if err != nil {
		panic(err)
	}

	fmt.Println(ok, g.NumStates())
	// Output:
	// true 3
}
