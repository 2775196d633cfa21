package service_test

import (
	"context"
	"fmt"

	"tvm-engine/domain"
	"tvm-engine/repository"
	"tvm-engine/service"
)

// A batch run wires a run repository and a cache into the scenario runner,
// hands it an ordered set of scenarios, and reads the rows back in the same
// order.
func ExampleScenarioService_Run() {
	repo := repository.NewRunRepositoryMemory()
	cache := repository.NewMemoryCache()
	runner := service.NewScenarioService(repo, cache, nil, 0)

	report, err := runner.Run(context.Background(), []domain.Scenario{
		{
			Label:    "interest-free loan",
			SolveFor: domain.SolvePayment,
			Inputs:   domain.TVMParameters{PresentValue: 1200, Rate: 0, Periods: 12},
		},
		{
			Label:    "retirement deposit",
			SolveFor: domain.SolveFutureValue,
			Inputs:   domain.TVMParameters{PresentValue: 1000, Payment: 100, Rate: 0.02, Periods: 12},
		},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("payment: %.2f\n", report.Rows[0].Outputs[service.OutPayment])
	fmt.Printf("futureValue: %.2f\n", report.Rows[1].Outputs[service.OutFutureValue])
	fmt.Printf("earnings: %.2f\n", report.Rows[1].Outputs[service.OutEarnings])
	// Output:
	// payment: 100.00
	// futureValue: 2609.45
	// earnings: 409.45
}
