// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render holds the host-integration boundary of vg: the
// DeviceHandle through which a host application lends vg its GPU
// device, and the RenderTarget destinations a frame can land in.
//
// The package is deliberately small. The canvas core
// (github.com/gogpu/vg) produces frame buffers without touching the
// GPU; backend/wgpu consumes them against a device the host supplies
// through these types.
package render
