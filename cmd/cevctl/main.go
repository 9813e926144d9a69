// Command cevctl inspects the growth and accounting behaviour of cev
// containers.
package main

func main() {
	execute()
}
