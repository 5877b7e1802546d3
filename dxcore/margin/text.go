/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package margin

// Trimmable is implemented by string-like values that can remove their own
// margin.
type Trimmable interface {
	// TrimMarginWith removes the margin marked by prefix. See the package
	// function of the same name.
	TrimMarginWith(prefix string) (string, bool)

	// TrimMargin removes the margin marked by DefaultPrefix.
	TrimMargin() (string, bool)
}

// Text is a string carrying the Trimmable methods, so that a literal can be
// trimmed where it is written:
//
//	banner, ok := margin.Text(`
//		|dxmargin
//		|  margin trimming for Go string literals
//	`).TrimMargin()
//
// Any string converts to Text without copying.
type Text string

// TrimMarginWith implements Trimmable.
func (t Text) TrimMarginWith(prefix string) (string, bool) {
	return TrimMarginWith(t, prefix)
}

// TrimMargin implements Trimmable.
func (t Text) TrimMargin() (string, bool) {
	return TrimMarginWith(t, DefaultPrefix)
}

// Compile-time verification that Text implements Trimmable.
var _ Trimmable = Text("")
