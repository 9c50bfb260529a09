// SPDX-License-Identifier: MIT

//go:build !lvgeomdebug

package matrix

func assertUnit(string, float64) {}

func assertIndex(int, int, int) {}
