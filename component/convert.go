package component

// APIConverter converts one front-end syntax node into a definition of
// type D.
//
// Each front end implements this once per definition kind: the IDL parser
// for its enum, dictionary and interface nodes, and the Go source scanner
// for its marked declarations. The ComponentInterface never inspects which
// front end produced a definition, so adding a third front end means adding
// implementations of this interface and nothing else.
//
// Convert receives mutable access to the in-progress interface because some
// conversions register subsidiary definitions as they go (an interface
// node, for example, may declare the error type its methods throw).
type APIConverter[D any] interface {
	Convert(ci *ComponentInterface) (D, error)
}

// ConvertAll runs Convert over a slice of nodes, stopping at the first
// failure. Conversion failures are fatal to the overall compilation, but
// the returned error identifies the offending node.
func ConvertAll[D any, N APIConverter[D]](ci *ComponentInterface, nodes []N) ([]D, error) {
	out := make([]D, 0, len(nodes))
	for _, node := range nodes {
		d, err := node.Convert(ci)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
