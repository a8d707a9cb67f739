// Copyright 2025 fwrite Authors
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

// Package fwrite serializes a columnar in-memory table to a delimited
// text stream, in the style of R's data.table::fwrite: single-pass,
// allocation-lean field encoders feed a batch-parallel, order-preserving
// writer.
//
// WriteTable is the single entry point. Everything else — table.Table,
// table.WriteOptions, the Sink implementations — is the surface it's
// built from.
package fwrite
