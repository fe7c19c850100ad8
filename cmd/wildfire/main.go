// Command wildfire simulates a stochastic forest fire on a square grid and
// compares its burn curve with a logistic growth model.
package main

func main() {
	Execute()
}
