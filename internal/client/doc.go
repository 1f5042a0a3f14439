// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sync client runtime of a POS device.
//
// It wires local storage, the remote sync client, connectivity monitoring
// and the sync engine services into a single process lifecycle.
package client
