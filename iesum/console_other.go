//go:build !windows

package main

func consoleCodes() bool { return true }
