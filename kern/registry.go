package kern

import (
	"fmt"
	"sort"
	"sync"
)

var registry = struct {
	sync.RWMutex
	kernels map[string]Kernel
}{
	kernels: map[string]Kernel{
		Gaussian.Name(): Gaussian,
		Laplace.Name():  Laplace,
		Matern32.Name(): Matern32,
		"matern32":      Matern32,
	},
}

// Register makes k available to Lookup under its name. Further kernel
// families plug in here with the same contract as the built-in ones.
func Register(k Kernel) error {
	registry.Lock()
	defer registry.Unlock()
	if _, ok := registry.kernels[k.Name()]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateKernel, k.Name())
	}
	registry.kernels[k.Name()] = k
	return nil
}

func Lookup(name string) (Kernel, error) {
	registry.RLock()
	defer registry.RUnlock()
	k, ok := registry.kernels[name]
	if !ok {
		return Kernel{}, fmt.Errorf("%w: %q", ErrUnknownKernel, name)
	}
	return k, nil
}

// Names returns the registered kernel names in sorted order, aliases
// included.
func Names() []string {
	registry.RLock()
	defer registry.RUnlock()
	names := make([]string, 0, len(registry.kernels))
	for name := range registry.kernels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
