package main

import "os"

func main() {
	rootCmd.AddCommand(snapshotCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
