// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the marketplace command-line client.
//
// An [App] runs one command per invocation against the marketplace API and
// prints the server response as indented JSON.
package client
