// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unsafe"
)

// DispatchLevel represents the SIMD instruction set being used.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE4 indicates SSE4.1 instructions (128-bit SIMD on x86-64).
	DispatchSSE4

	// DispatchAVX2 indicates AVX2 with FMA (256-bit SIMD).
	DispatchAVX2

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// ErrUnknownLevel is returned by ParseDispatchLevel for unrecognized names.
var ErrUnknownLevel = errors.New("hwy: unknown dispatch level")

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE4:
		return "sse4"
	case DispatchAVX2:
		return "avx2"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Width returns the register width in bytes used at this level.
// Scalar uses 16 bytes so lane-count helpers stay meaningful.
func (d DispatchLevel) Width() int {
	if d == DispatchAVX2 {
		return 32
	}
	return 16
}

// ParseDispatchLevel parses a level name as printed by String.
// Matching is case-insensitive and accepts "sse4.1" for DispatchSSE4.
func ParseDispatchLevel(name string) (DispatchLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "scalar", "none":
		return DispatchScalar, nil
	case "sse4", "sse4.1", "sse41":
		return DispatchSSE4, nil
	case "avx2":
		return DispatchAVX2, nil
	case "neon", "asimd":
		return DispatchNEON, nil
	}
	return DispatchScalar, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the SIMD register width in bytes for the current level.
// Set by init() in dispatch_*.go files.
var currentWidth = 16

// currentName is the human-readable name of the current SIMD level.
// Set by init() in dispatch_*.go files.
var currentName = "scalar"

// detectedLevel is what the CPU supports before HWY_MAX_LEVEL is applied.
var detectedLevel DispatchLevel

func setLevel(level DispatchLevel) {
	currentLevel = level
	currentWidth = level.Width()
	currentName = level.String()
}

func setScalarMode() {
	setLevel(DispatchScalar)
}

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// DetectedLevel returns the best level the CPU supports, ignoring
// HWY_NO_SIMD and HWY_MAX_LEVEL.
func DetectedLevel() DispatchLevel {
	return detectedLevel
}

// CurrentWidth returns the SIMD register width in bytes.
// For example: 16 for SSE4/NEON, 32 for AVX2.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentName
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, Highway will use scalar fallback regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLevelEnv reads HWY_MAX_LEVEL. It returns ok == false when the variable
// is unset, and an error wrapping ErrUnknownLevel when it does not parse.
func MaxLevelEnv() (level DispatchLevel, ok bool, err error) {
	val, set := os.LookupEnv("HWY_MAX_LEVEL")
	if !set || strings.TrimSpace(val) == "" {
		return DispatchScalar, false, nil
	}
	level, err = ParseDispatchLevel(val)
	if err != nil {
		return DispatchScalar, false, fmt.Errorf("HWY_MAX_LEVEL: %w", err)
	}
	return level, true, nil
}

// CapLevel lowers detected to limit when limit is a level the same CPU can
// run: scalar always, SSE4 below AVX2 on x86. Any other limit leaves
// detected unchanged.
func CapLevel(detected, limit DispatchLevel) DispatchLevel {
	switch {
	case limit == DispatchScalar:
		return DispatchScalar
	case limit == DispatchSSE4 && detected == DispatchAVX2:
		return DispatchSSE4
	}
	return detected
}

// applyConfig sets the current level from detection and the environment.
// An unparsable HWY_MAX_LEVEL is ignored; cmd tools validate it themselves
// through MaxLevelEnv and report the error.
func applyConfig(detected DispatchLevel) {
	detectedLevel = detected
	if NoSimdEnv() {
		setScalarMode()
		return
	}
	level := detected
	if limit, ok, err := MaxLevelEnv(); err == nil && ok {
		level = CapLevel(detected, limit)
	}
	setLevel(level)
}

// LanesFor returns how many T lanes fit in width bytes, capped at MaxVecLanes.
func LanesFor[T Lanes](width int) int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return min(width/elementSize, MaxVecLanes)
}
