package chip

import "github.com/sverrel/ym7128emu/base"

// registerFile is the 32-byte register surface shared by all engine
// variants. Writes mask the value to the field width of the address;
// out-of-range addresses are ignored. The chip has no error path
// here, a bad write is simply dropped.
type registerFile struct {
	regs [base.AddressCount]uint8
}

func (rf *registerFile) Write(addr uint8, value uint8) bool {
	if int(addr) >= base.AddressCount {
		return false
	}
	rf.regs[addr] = value & base.AddressMasks[addr]
	return true
}

func (rf *registerFile) Read(addr uint8) uint8 {
	if int(addr) >= base.AddressCount {
		return 0
	}
	return rf.regs[addr]
}

func (rf *registerFile) Reset() {
	for i := range rf.regs {
		rf.regs[i] = 0
	}
}

// gainField returns the raw 6-bit field for a gain/coefficient
// address, tapField the raw 5-bit selector for T0..T8 (k = 0..8).
func (rf *registerFile) gainField(addr int) uint8 {
	return rf.regs[addr]
}

func (rf *registerFile) tapField(k int) uint8 {
	return rf.regs[base.REG_T0+k]
}
