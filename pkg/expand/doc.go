// Copyright 2026 Benoit Pereira da Silva
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

// Package expand is a small set of independent, pure helpers:
//
//   - Clean normalizes whitespace in a string.
//   - FindLast searches a sequence or a mapping from the end.
//   - WillBleedBottom (and its siblings) check whether a box overflows a
//     viewport.
//
// Static typing replaces most run-time argument checks. The remaining
// dynamic cases (CleanValue, CollectionOf, nil records and predicates) are
// validated at entry and rejected with an *ArgumentError before any
// computation.
package expand
