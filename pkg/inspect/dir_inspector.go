package inspect

// DirInspector is the default Inspector implementation over a real directory
// tree.
type DirInspector struct{}

// NewInspector creates a DirInspector.
func NewInspector() *DirInspector {
	return &DirInspector{}
}

// Inspect implements the inspector contract for extracted archive trees.
func (DirInspector) Inspect(extractRoot string) (*Layout, error) {
	return Inspect(extractRoot)
}
