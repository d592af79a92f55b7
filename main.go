package main

import "github.com/Alijeyrad/enquiry_backend/cmd"

func main() {
	cmd.Execute()
}
