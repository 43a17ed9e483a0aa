// Command bsxctl exports and re-imports the strings of BSXScript containers.
package main

func main() {
	execute()
}
