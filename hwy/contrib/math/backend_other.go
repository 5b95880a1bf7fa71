//go:build !amd64 || !goexperiment.simd

package math

// archBackend reports that no archsimd kernels are compiled in; AVX2 then
// runs the portable lane kernels at 32-byte width.
func archBackend() (Backend, bool) { return Backend{}, false }

func archMapUnary(Func, any, any) bool { return false }

func archMapBinary(Func, any, any, any) bool { return false }
