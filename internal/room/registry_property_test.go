package room

import (
	"fmt"
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property: after any sequence of join/leave operations the registry's
// snapshot per room equals a naive set model, and a room exists if and
// only if its model set is non-empty.
func TestRegistry_MatchesSetModelProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	// Each byte encodes one operation: bit 0 selects join/leave, bits 1-2
	// select one of four rooms, bits 3-5 one of eight names.
	properties.Property("registry equals set model after arbitrary ops", prop.ForAll(
		func(ops []uint8) bool {
			registry := NewRegistry()
			model := make(map[string]map[string]struct{})

			for _, op := range ops {
				roomID := fmt.Sprintf("room-%d", (op>>1)&3)
				name := fmt.Sprintf("user-%d", (op>>3)&7)

				if op&1 == 1 {
					registry.Join(roomID, name)
					if model[roomID] == nil {
						model[roomID] = make(map[string]struct{})
					}
					model[roomID][name] = struct{}{}
				} else {
					registry.Leave(roomID, name)
					if set := model[roomID]; set != nil {
						delete(set, name)
						if len(set) == 0 {
							delete(model, roomID)
						}
					}
				}
			}

			for roomID, set := range model {
				if !registry.Contains(roomID) {
					return false
				}
				want := make([]string, 0, len(set))
				for name := range set {
					want = append(want, name)
				}
				sort.Strings(want)
				got := registry.Members(roomID)
				if len(got) != len(want) {
					return false
				}
				for i := range want {
					if got[i] != want[i] {
						return false
					}
				}
			}

			return registry.Rooms() == len(model)
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.TestingRun(t)
}
