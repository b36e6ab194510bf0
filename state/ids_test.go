package state_test

import (
	"fmt"

	"github.com/blastentwice/CK3-Family-Tree-Exporter-To-Gramps/state"
)

func ExampleStem() {
	st := state.NewStem("m")
	fmt.Println(st.Next(), st.Next(), st.Next(), st.Issued())

	// Output:
	// m1 m2 m3 3
}
