/*
Copyright (C) 2026  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package main

import (
	"fmt"
	"math/rand"

	"github.com/launix-de/memcp-sort/pdqsort"
)

func main() {
	fmt.Print(`memcp-sort Copyright (C) 2026   Carl-Philip Hänsch
    This program comes with ABSOLUTELY NO WARRANTY;
    This is free software, and you are welcome to redistribute it
    under certain conditions;
`)

	rng := rand.New(rand.NewSource(1))
	values := make([]int, 20)
	for i := range values {
		values[i] = rng.Intn(1000)
	}
	fmt.Println("before:", values)
	pdqsort.Sort(values)
	fmt.Println("after: ", values)
}
