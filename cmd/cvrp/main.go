// cvrp solves a CVRPLIB instance file through the native engine and prints
// the resulting routes.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"vrpsolver-service/internal/adapters/engine"
	"vrpsolver-service/internal/instances"
	"vrpsolver-service/internal/services"
)

func main() {
	instancePath := flag.String("instance", "", "path to a CVRPLIB .vrp file")
	timeLimit := flag.Float64("time-limit", 60, "solve time limit in seconds")
	export := flag.Bool("export", false, "write the request and result documents next to the instance")
	flag.Parse()

	if *instancePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	eng, err := engine.Load(engine.Config{
		LibDir:    os.Getenv("ENGINE_LIB_DIR"),
		CplexPath: os.Getenv("CPLEX_PATH"),
	})
	if err != nil {
		log.Fatal(err)
	}

	inst, err := instances.ReadCVRP(*instancePath)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Instance %s: %d points, capacity %d", inst.Name, inst.Dimension, inst.Capacity)

	model, err := inst.BuildModel()
	if err != nil {
		log.Fatal(err)
	}
	params := model.Parameters()
	if err := params.SetTimeLimit(*timeLimit); err != nil {
		log.Fatal(err)
	}
	model.SetParameters(params)

	if *export {
		if err := model.Export(inst.Name); err != nil {
			log.Fatal(err)
		}
	}

	svc := &services.SolveService{Engine: eng}
	sol, err := svc.Solve(context.Background(), model)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Print(sol)

	if *export {
		if err := sol.Export(inst.Name + "_result"); err != nil {
			log.Fatal(err)
		}
	}
}
