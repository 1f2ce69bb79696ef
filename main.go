/*
Copyright (c) 2025 Proyecto Rodrigo. All rights reserved.
Licensed under the MIT License, see LICENSE file in the project root for details.
*/
package main

import "github.com/proyectorodrigo/polizabot/cmd"

func main() {
	cmd.Execute()
}
