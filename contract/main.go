////////////////////////////////////////////////////////////////////////////////
// Scythra Presale: tiered token sale contract for the vsc network
////////////////////////////////////////////////////////////////////////////////

package main

// main is left empty on purpose
func main() {

}
