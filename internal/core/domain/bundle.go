package domain

// CombineKeyPrefix prefixes bundle keys derived from a content hash.
const CombineKeyPrefix = "_cmb_"

// BundleSpec names a bundle and the asset references it combines, in declared order.
type BundleSpec struct {
	Name string
	Refs []string
}

// BundleConfig is an ordered list of bundle specifications.
type BundleConfig []BundleSpec

// Names returns the bundle names in configuration order.
func (c BundleConfig) Names() []string {
	names := make([]string, len(c))
	for i, spec := range c {
		names[i] = spec.Name
	}
	return names
}

// BundleOutput maps bundle keys to ordered asset paths, remembering the order
// in which keys were first added.
type BundleOutput struct {
	keys  []string
	files map[string][]string
}

// NewBundleOutput creates an empty BundleOutput.
func NewBundleOutput() *BundleOutput {
	return &BundleOutput{files: make(map[string][]string)}
}

// Add appends paths to the bucket for key, creating it if needed.
// Adding no paths does not create the key.
func (o *BundleOutput) Add(key string, paths ...string) {
	if len(paths) == 0 {
		return
	}
	if _, ok := o.files[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.files[key] = append(o.files[key], paths...)
}

// Keys returns the bundle keys in insertion order.
func (o *BundleOutput) Keys() []string {
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Files returns the paths stored under key.
func (o *BundleOutput) Files(key string) []string {
	return o.files[key]
}

// Has reports whether key is present.
func (o *BundleOutput) Has(key string) bool {
	_, ok := o.files[key]
	return ok
}

// Len returns the number of keys.
func (o *BundleOutput) Len() int {
	return len(o.keys)
}

// Map returns a copy of the output with every path passed through fn.
func (o *BundleOutput) Map(fn func(string) string) *BundleOutput {
	mapped := NewBundleOutput()
	for _, key := range o.keys {
		paths := make([]string, len(o.files[key]))
		for i, p := range o.files[key] {
			paths[i] = fn(p)
		}
		mapped.Add(key, paths...)
	}
	return mapped
}

// GulpSection is one section of the gulp settings file: the assets of one
// asset reference and the bundle they are concatenated into.
type GulpSection struct {
	Name     string
	Dist     string
	TopLinks []string
}
