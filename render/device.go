// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// This is the integration point between vg and GPU frameworks: the host
// (e.g. a gogpu.App) implements DeviceHandle and passes it to a
// renderer, which then shares the host's device and queue. vg RECEIVES
// the device, it never creates one — GPU resources stay shared across
// the stack and device setup cost is paid once.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, giving the
// interface a vg-local name while staying fully compatible with the
// gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle with nil device and queue. It is
// used when no GPU is available and the frame buffers are consumed on
// the CPU only.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo returns empty adapter info for the null device.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{}
}

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

var _ DeviceHandle = NullDeviceHandle{}

// DeviceCapabilities describes what a device can do, letting callers
// pick texture sizes and features before building atlases or targets.
type DeviceCapabilities struct {
	// MaxTextureSize is the maximum texture dimension supported.
	// Glyph and image atlases must not exceed it.
	MaxTextureSize uint32

	// MaxBindGroups is the maximum number of bind groups.
	MaxBindGroups uint32

	// VendorName is the GPU vendor name.
	VendorName string

	// DeviceName is the GPU device name.
	DeviceName string
}
