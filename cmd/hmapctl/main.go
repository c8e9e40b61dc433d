// Command hmapctl loads table files into keyed-store tables and inspects them.
package main

func main() {
	execute()
}
