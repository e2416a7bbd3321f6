// Copyright 2025 the virtic authors
// Licensed under the MIT license. See license text in the LICENSE file.

package chips

import "github.com/virtic/virtic"

// Factory builds every chip type shipped in this package. Pass it to
// virtic.Load to restore saved boards. It returns nil for foreign type tags,
// so callers with custom chips can chain their own factory in front of it.
func Factory(typeTag string) virtic.Chip {
	switch typeTag {
	case TypeGateOr:
		return NewGateOr()
	case TypeGateAnd:
		return NewGateAnd()
	case TypeGateNand:
		return NewGateNand()
	case TypeGateNor:
		return NewGateNor()
	case TypeGateNot:
		return NewGateNot()
	case TypeGateAnd3:
		return NewGateAnd3()
	case TypeGateNand3:
		return NewGateNand3()
	case TypeGateNor3:
		return NewGateNor3()
	case TypeGenerator:
		return NewGenerator()
	case TypeRam256:
		return NewRam256()
	case TypeRom256:
		return NewRom256()
	}
	return nil
}
