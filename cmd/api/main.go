package main

import (
	"benchboss/cmd"
	"log"
)

func main() {
	apiHandler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	err = apiHandler.StartApi(apiHandler.Config.Port)
	if err != nil {
		log.Fatal(err)
	}
}
