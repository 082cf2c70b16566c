package csr

// Addresses of the built-in CSR blocks and registers.
const (
	PSR_BASE     = 0x000
	PSR_SIZE     = 1 * BLOCK_SIZE
	PSR_PSR0_REG = PSR_BASE + 0x00

	ISR_BASE      = PSR_BASE + PSR_SIZE
	ISR_SIZE      = 3 * BLOCK_SIZE
	ISR_BASE_REG  = ISR_BASE + 0x00
	ISR_ERR1_REG  = ISR_BASE + 0x04
	ISR_ERR2_REG  = ISR_BASE + 0x08
	ISR_ENTER_REG = ISR_BASE + 0x0c
	ISR_EXIT_REG  = ISR_BASE + 0x10
	ISR_R1_REG    = ISR_BASE + 0x40
	ISR_R2_REG    = ISR_BASE + 0x44
	ISR_R3_REG    = ISR_BASE + 0x48
	ISR_R4_REG    = ISR_BASE + 0x4c
	ISR_R5_REG    = ISR_BASE + 0x50
	ISR_R6_REG    = ISR_BASE + 0x54
	ISR_R7_REG    = ISR_BASE + 0x58
	ISR_R8_REG    = ISR_BASE + 0x5c
	ISR_R9_REG    = ISR_BASE + 0x60
	ISR_R10_REG   = ISR_BASE + 0x64
	ISR_R11_REG   = ISR_BASE + 0x68
	ISR_R12_REG   = ISR_BASE + 0x6c
	ISR_R13_REG   = ISR_BASE + 0x70
	ISR_R14_REG   = ISR_BASE + 0x74
	ISR_R15_REG   = ISR_BASE + 0x78
	ISR_R16_REG   = ISR_BASE + 0x7c
	ISR_R17_REG   = ISR_BASE + 0x80
	ISR_R18_REG   = ISR_BASE + 0x84
	ISR_R19_REG   = ISR_BASE + 0x88
	ISR_R20_REG   = ISR_BASE + 0x8c
	ISR_R21_REG   = ISR_BASE + 0x90
	ISR_R22_REG   = ISR_BASE + 0x94
	ISR_R23_REG   = ISR_BASE + 0x98
	ISR_R24_REG   = ISR_BASE + 0x9c
	ISR_R25_REG   = ISR_BASE + 0xa0
	ISR_R26_REG   = ISR_BASE + 0xa4
	ISR_R27_REG   = ISR_BASE + 0xa8
	ISR_SP_REG    = ISR_BASE + 0xac
	ISR_FP_REG    = ISR_BASE + 0xb0
	ISR_LR_REG    = ISR_BASE + 0xb4
	ISR_PC_REG    = ISR_BASE + 0xb8

	DBG_OUT_BASE          = ISR_BASE + ISR_SIZE
	DBG_OUT_SIZE          = 4 * BLOCK_SIZE
	DBG_OUT_STATUS_REG    = DBG_OUT_BASE + 0x00
	DBG_OUT_CHAR_OUT0_REG = DBG_OUT_BASE + 0x40
	DBG_OUT_CHAR_IN0_REG  = DBG_OUT_BASE + 0x41
	DBG_OUT_BYTE_OUT0_REG = DBG_OUT_BASE + 0x80
	DBG_OUT_BYTE_OUT1_REG = DBG_OUT_BASE + 0x81
	DBG_OUT_BYTE_OUT2_REG = DBG_OUT_BASE + 0x82
	DBG_OUT_BYTE_OUT3_REG = DBG_OUT_BASE + 0x83
	DBG_OUT_GPIO_OUT0_REG = DBG_OUT_BASE + 0xc0
	DBG_OUT_GPIO_IN0_REG  = DBG_OUT_BASE + 0xc4
)
