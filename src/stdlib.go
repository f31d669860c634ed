package ppl

// RegisterStandardLibrary installs the PPL instruction set
func (ip *Interpreter) RegisterStandardLibrary() {
	registerDeclareLib(ip.executor)
	registerMathLib(ip.executor)
	registerListLib(ip.executor)
	registerFlowLib(ip.executor)
	registerIOLib(ip.executor)
}
