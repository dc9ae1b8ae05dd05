// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client process runtime.
//
// [Provider] owns the dictionary cache lifecycle: version guard, initial
// sync, preload and the background workers. [App] wires the provider, its
// storage and transport, and the terminal browser into one process.
package client
