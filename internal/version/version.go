/*
Copyright (c) 2025 Proyecto Rodrigo. All rights reserved.
Licensed under the MIT License, see LICENSE file in the project root for details.
*/
package version

import "fmt"

// Set at build time via -ldflags.
var (
	Version   = ""
	GitCommit = ""
)

const banner = `
             _ _         _           _
 _ __   ___ | (_)______ | |__   ___ | |_
| '_ \ / _ \| | |_  / _` + "`" + ` | '_ \ / _ \| __|
| |_) | (_) | | |/ / (_| | |_) | (_) | |_
| .__/ \___/|_|_/___\__,_|_.__/ \___/ \__|
|_|
`

func Release() string {
	if Version == "" {
		return "dev"
	}
	return Version
}

func Commit() string {
	if GitCommit == "" {
		return "unknown"
	}
	return GitCommit
}

func Banner() string {
	return banner
}

func Print() {
	fmt.Println(Banner())
	fmt.Printf("Release: %s\n", Release())
	fmt.Printf("Commit:  %s\n", Commit())
}
