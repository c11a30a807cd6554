package main

import "github.com/medgenlab/seqsample/cmd/seqsample/cmd"

func main() {
	cmd.Execute()
}
