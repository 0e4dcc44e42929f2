// sgmatch maps free-form Persian/English text onto the Sigma Gloves
// catalogs: industry codes, protection intents, knowledge articles, and
// products. Single binary, embedded default catalogs.
package main

import (
	"os"

	"github.com/sigmagloves/sgmatch/cmd/sgmatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
