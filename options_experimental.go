// Copyright 2025 Florian Zenker (flo@znkr.io)
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

//go:build experimental

package symbol

import "znkr.io/symbol/internal/config"

// ShortWordFastPath rewrites words of length 2 directly instead of expanding shuffle products:
// (b,a) with a < b becomes -(a,b).
//
// Experimental: This option is only available with the build tag "experimental", because the
// benefit is small and it's only used for words of length 2.
func ShortWordFastPath() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.ShortWords = true
		return config.ShortWords
	}
}
