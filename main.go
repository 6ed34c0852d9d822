package main

import "payroll-recon/cmd"

func main() {
	cmd.Execute()
}
