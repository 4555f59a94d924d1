package gallery

const (
	// Size is the number of artworks in the catalog.
	Size = 5
	// First is the selection of a freshly activated screen.
	First = 1
)

// Next returns the selection after current, wrapping from Size back to First.
func Next(current int) int {
	return wrap(current) + 1
}

// Previous returns the selection before current, wrapping from First to Size.
func Previous(current int) int {
	return wrap(current-2) + 1
}

// wrap reduces i into [0, Size) so both transitions stay closed over 1..Size
// even for inputs outside it.
func wrap(i int) int {
	return ((i % Size) + Size) % Size
}

// Valid reports whether index addresses a catalog entry.
func Valid(index int) bool {
	return index >= First && index <= Size
}
