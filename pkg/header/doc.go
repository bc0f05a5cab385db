// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

// Package header provides the common header carried by doccollect documents.
//
// Run reports and compiler tables printed by the CLI start with a header
// naming the document kind, the API version and metadata such as the
// timestamp, the tool version and the run id:
//
//	kind: CollectionReport
//	apiVersion: doccollect.dev/v1alpha1
//	metadata:
//	  run-id: 9d1c...
//	  timestamp: "2025-01-15T10:30:00Z"
//	  version: v1.0.0
package header
