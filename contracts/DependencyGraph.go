package contracts

type DependencyGraph interface {
	// SetDependsOn
	/**
	 * For formula `A1 = B1 + C1`:
	 *   SetDependsOn("A1", []string{"B1", "C1"})
	 * replaces every reference previously stored for A1, so
	 * ReverseDeps("B1") and ReverseDeps("C1") contain A1 and nothing stale.
	 */
	SetDependsOn(cellKey string, references []string)

	// ForwardDeps cells which `cellKey` reads from
	ForwardDeps(cellKey string) []string

	// ReverseDeps cells which read from `cellKey`
	ReverseDeps(cellKey string) []string

	// Dependants
	/**
	 * Transitive closure of ReverseDeps.
	 * `A1 = B1`, `C1 = A1 * 2` => Dependants("B1") returns ["A1", "C1"]
	 */
	Dependants(cellKey string) []string

	ForwardMap() map[string][]string
	ReverseMap() map[string][]string
}
