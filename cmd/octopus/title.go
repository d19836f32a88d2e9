package main

func windowTitle(simName string) string {
	return "Dumbo Octopus - " + simName
}
