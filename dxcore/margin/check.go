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

import "dirpx.dev/rxmerr"

// Check reports every line of text that breaks the margin convention for
// prefix. It returns nil exactly when TrimMarginWith(text, prefix) succeeds;
// otherwise the returned error combines one *errors.MarginError per offending
// line, in input order.
//
// Check is the diagnostic companion of TrimMarginWith for callers that load
// margined text from configuration and need to point users at the broken
// lines:
//
//	if err := margin.Check(raw, "|"); err != nil {
//	    return fmt.Errorf("help text of %s: %w", name, err)
//	}
func Check[S StringLike](text S, prefix string) error {
	c := rxmerr.NewCollector()

	for _, v := range Violations(text, prefix) {
		c.Append(v)
	}

	return c.Err()
}
