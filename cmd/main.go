package main

import (
	"github.com/DEVKING-Kunal/wastewise-nutrition/config"
	"github.com/DEVKING-Kunal/wastewise-nutrition/routes"
	"github.com/DEVKING-Kunal/wastewise-nutrition/utils"
)

func main() {
	config.InitDB()
	utils.InitMailer()
	utils.InitS3()
	r := routes.SetupRouter()
	r.Run(":8080")
}
