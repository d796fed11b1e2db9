package kernel

// The sizes below are excluded from cmd/genkernels' walk over Sizes (see
// internal/gen.Config.HandGen) and written out here instead. 18, 27 and
// 125 would otherwise fall to the twiddle-free Good-Thomas path (18) or
// the O(N^2) direct-sum Prime path (27, 125); the mixed-radix form used
// here costs fewer operations for a factor this small. 9 is the smallest
// odd-square Mixed case and 3 is the smallest Prime base case, both
// worth hand-checking since nearly every composite kernel recurses into
// one of them.

// fft3 is the unrolled 3-point DFT, the recursion's most common leaf.
func fft3[T Complex](x [3]T) [3]T {
	w1 := T(complex(-0.5, -0.8660254037844387))
	w2 := T(complex(-0.5, 0.8660254037844387))
	return [3]T{
		x[0] + x[1] + x[2],
		x[0] + x[1]*w1 + x[2]*w2,
		x[0] + x[1]*w2 + x[2]*w1,
	}
}

// fft9 is a square mixed-radix (3x3) decomposition of size 9.
func fft9[T Complex](x [9]T) [9]T {
	row0 := fft3([3]T{x[0], x[3], x[6]})
	row1 := fft3([3]T{x[1], x[4], x[7]})
	row2 := fft3([3]T{x[2], x[5], x[8]})
	col0 := fft3([3]T{row0[0], row1[0], row2[0]})
	col1 := fft3([3]T{row0[1], row1[1] * T(complex(0.766044443118978, -0.6427876096865393)), row2[1] * T(complex(0.17364817766693041, -0.984807753012208))})
	col2 := fft3([3]T{row0[2], row1[2] * T(complex(0.17364817766693041, -0.984807753012208)), row2[2] * T(complex(-0.9396926207859083, -0.3420201433256689))})
	return [9]T{col0[0], col1[0], col2[0], col0[1], col1[1], col2[1], col0[2], col1[2], col2[2]}
}

// fft18 is a generalized (non-square) mixed-radix 2x9 decomposition of
// size 18: rows of size 9, columns of size 2, twiddles W[x][y] =
// twiddle(x*y, 18) for x in [0,2), y in [0,9).
func fft18[T Complex](x [18]T) [18]T {
	row0 := fft9([9]T{x[0], x[2], x[4], x[6], x[8], x[10], x[12], x[14], x[16]})
	row1 := fft9([9]T{x[1], x[3], x[5], x[7], x[9], x[11], x[13], x[15], x[17]})
	col0 := fft2([2]T{row0[0], row1[0]})
	col1 := fft2([2]T{row0[1], row1[1] * T(complex(0.9396926207859084, -0.3420201433256687))})
	col2 := fft2([2]T{row0[2], row1[2] * T(complex(0.766044443118978, -0.6427876096865393))})
	col3 := fft2([2]T{row0[3], row1[3] * T(complex(0.5000000000000001, -0.8660254037844386))})
	col4 := fft2([2]T{row0[4], row1[4] * T(complex(0.17364817766693041, -0.984807753012208))})
	col5 := fft2([2]T{row0[5], row1[5] * T(complex(-0.1736481776669303, -0.984807753012208))})
	col6 := fft2([2]T{row0[6], row1[6] * T(complex(-0.4999999999999998, -0.8660254037844387))})
	col7 := fft2([2]T{row0[7], row1[7] * T(complex(-0.7660444431189779, -0.6427876096865395))})
	col8 := fft2([2]T{row0[8], row1[8] * T(complex(-0.9396926207859083, -0.3420201433256689))})
	return [18]T{col0[0], col1[0], col2[0], col3[0], col4[0], col5[0], col6[0], col7[0], col8[0], col0[1], col1[1], col2[1], col3[1], col4[1], col5[1], col6[1], col7[1], col8[1]}
}

// fft27 is a generalized (non-square) mixed-radix 3x9 decomposition of
// size 27: rows of size 9, columns of size 3, twiddles W[x][y] =
// twiddle(x*y, 27) for x in [0,3), y in [0,9).
func fft27[T Complex](x [27]T) [27]T {
	row0 := fft9([9]T{x[0], x[3], x[6], x[9], x[12], x[15], x[18], x[21], x[24]})
	row1 := fft9([9]T{x[1], x[4], x[7], x[10], x[13], x[16], x[19], x[22], x[25]})
	row2 := fft9([9]T{x[2], x[5], x[8], x[11], x[14], x[17], x[20], x[23], x[26]})
	col0 := fft3([3]T{row0[0], row1[0], row2[0]})
	col1 := fft3([3]T{row0[1], row1[1] * T(complex(0.9730448705798238, -0.23061587074244017)), row2[1] * T(complex(0.8936326403234123, -0.44879918020046217))})
	col2 := fft3([3]T{row0[2], row1[2] * T(complex(0.8936326403234123, -0.44879918020046217)), row2[2] * T(complex(0.5971585917027862, -0.8021231927550437))})
	col3 := fft3([3]T{row0[3], row1[3] * T(complex(0.766044443118978, -0.6427876096865393)), row2[3] * T(complex(0.17364817766693041, -0.984807753012208))})
	col4 := fft3([3]T{row0[4], row1[4] * T(complex(0.5971585917027862, -0.8021231927550437)), row2[4] * T(complex(-0.2868032327110902, -0.9579895123154889))})
	col5 := fft3([3]T{row0[5], row1[5] * T(complex(0.3960797660391569, -0.918216106880274)), row2[5] * T(complex(-0.6862416378687335, -0.7273736415730488))})
	col6 := fft3([3]T{row0[6], row1[6] * T(complex(0.17364817766693041, -0.984807753012208)), row2[6] * T(complex(-0.9396926207859083, -0.3420201433256689))})
	col7 := fft3([3]T{row0[7], row1[7] * T(complex(-0.058144828910475774, -0.9983081582712682)), row2[7] * T(complex(-0.993238357741943, 0.11609291412523012))})
	col8 := fft3([3]T{row0[8], row1[8] * T(complex(-0.2868032327110902, -0.9579895123154889)), row2[8] * T(complex(-0.8354878114129365, 0.549508978070806))})
	return [27]T{col0[0], col1[0], col2[0], col3[0], col4[0], col5[0], col6[0], col7[0], col8[0], col0[1], col1[1], col2[1], col3[1], col4[1], col5[1], col6[1], col7[1], col8[1], col0[2], col1[2], col2[2], col3[2], col4[2], col5[2], col6[2], col7[2], col8[2]}
}

// fft125 is a generalized (non-square) mixed-radix 5x25 decomposition of
// size 125: rows of size 25, columns of size 5, twiddles W[x][y] =
// twiddle(x*y, 125) for x in [0,5), y in [0,25).
func fft125[T Complex](x [125]T) [125]T {
	row0 := fft25([25]T{x[0], x[5], x[10], x[15], x[20], x[25], x[30], x[35], x[40], x[45], x[50], x[55], x[60], x[65], x[70], x[75], x[80], x[85], x[90], x[95], x[100], x[105], x[110], x[115], x[120]})
	row1 := fft25([25]T{x[1], x[6], x[11], x[16], x[21], x[26], x[31], x[36], x[41], x[46], x[51], x[56], x[61], x[66], x[71], x[76], x[81], x[86], x[91], x[96], x[101], x[106], x[111], x[116], x[121]})
	row2 := fft25([25]T{x[2], x[7], x[12], x[17], x[22], x[27], x[32], x[37], x[42], x[47], x[52], x[57], x[62], x[67], x[72], x[77], x[82], x[87], x[92], x[97], x[102], x[107], x[112], x[117], x[122]})
	row3 := fft25([25]T{x[3], x[8], x[13], x[18], x[23], x[28], x[33], x[38], x[43], x[48], x[53], x[58], x[63], x[68], x[73], x[78], x[83], x[88], x[93], x[98], x[103], x[108], x[113], x[118], x[123]})
	row4 := fft25([25]T{x[4], x[9], x[14], x[19], x[24], x[29], x[34], x[39], x[44], x[49], x[54], x[59], x[64], x[69], x[74], x[79], x[84], x[89], x[94], x[99], x[104], x[109], x[114], x[119], x[124]})
	col0 := fft5([5]T{row0[0], row1[0], row2[0], row3[0], row4[0]})
	col1 := fft5([5]T{row0[1], row1[1] * T(complex(0.9987369566060175, -0.050244318179769556)), row2[1] * T(complex(0.9949510169813002, -0.1003617148512149)), row3[1] * T(complex(0.9886517447379141, -0.15022558912075706)), row4[1] * T(complex(0.9798550523842469, -0.19970998051440703))})
	col2 := fft5([5]T{row0[2], row1[2] * T(complex(0.9949510169813002, -0.1003617148512149)), row2[2] * T(complex(0.9798550523842469, -0.19970998051440703)), row3[2] * T(complex(0.954864544746643, -0.2970415815770349)), row4[2] * T(complex(0.9202318473658704, -0.3913736668372024))})
	col3 := fft5([5]T{row0[3], row1[3] * T(complex(0.9886517447379141, -0.15022558912075706)), row2[3] * T(complex(0.954864544746643, -0.2970415815770349)), row3[3] * T(complex(0.8994052515663711, -0.4371157666509329)), row4[3] * T(complex(0.8235325976284275, -0.5672689491267565))})
	col4 := fft5([5]T{row0[4], row1[4] * T(complex(0.9798550523842469, -0.19970998051440703)), row2[4] * T(complex(0.9202318473658704, -0.3913736668372024)), row3[4] * T(complex(0.8235325976284275, -0.5672689491267565)), row4[4] * T(complex(0.6936533058128049, -0.7203090248879069))})
	col5 := fft5([5]T{row0[5], row1[5] * T(complex(0.9685831611286311, -0.2486898871648548)), row2[5] * T(complex(0.8763066800438636, -0.4817536741017153)), row3[5] * T(complex(0.7289686274214116, -0.6845471059286886)), row4[5] * T(complex(0.5358267949789965, -0.8443279255020151))})
	col6 := fft5([5]T{row0[6], row1[6] * T(complex(0.954864544746643, -0.2970415815770349)), row2[6] * T(complex(0.8235325976284275, -0.5672689491267565)), row3[6] * T(complex(0.6178596130903343, -0.7862884321366189)), row4[6] * T(complex(0.35641187871325075, -0.934328942456612))})
	col7 := fft5([5]T{row0[7], row1[7] * T(complex(0.9387338576538741, -0.34464292317451706)), row2[7] * T(complex(0.7624425110114479, -0.6470559615694442)), row3[7] * T(complex(0.49272734154829156, -0.8701837546695257)), row4[7] * T(complex(0.16263716519488372, -0.986685944207868))})
	col8 := fft5([5]T{row0[8], row1[8] * T(complex(0.9202318473658704, -0.3913736668372024)), row2[8] * T(complex(0.6936533058128049, -0.7203090248879069)), row3[8] * T(complex(0.35641187871325075, -0.934328942456612)), row4[8] * T(complex(-0.037690182669934576, -0.9992894726405892))})
	col9 := fft5([5]T{row0[9], row1[9] * T(complex(0.8994052515663711, -0.4371157666509329)), row2[9] * T(complex(0.6178596130903343, -0.7862884321366189)), row3[9] * T(complex(0.21200710992205474, -0.9772681235681935)), row4[9] * T(complex(-0.23649899702372465, -0.971631732914674))})
	col10 := fft5([5]T{row0[10], row1[10] * T(complex(0.8763066800438636, -0.4817536741017153)), row2[10] * T(complex(0.5358267949789965, -0.8443279255020151)), row3[10] * T(complex(0.06279051952931353, -0.9980267284282716)), row4[10] * T(complex(-0.4257792915650727, -0.9048270524660195))})
	col11 := fft5([5]T{row0[11], row1[11] * T(complex(0.850994481794692, -0.5251746299612956)), row2[11] * T(complex(0.44838321609003245, -0.8938414241512637)), row3[11] * T(complex(-0.0878511965507432, -0.9961336091431725)), row4[11] * T(complex(-0.5979049830575185, -0.8015669848708769))})
	col12 := fft5([5]T{row0[12], row1[12] * T(complex(0.8235325976284275, -0.5672689491267565)), row2[12] * T(complex(0.35641187871325075, -0.934328942456612)), row3[12] * T(complex(-0.23649899702372465, -0.971631732914674)), row4[12] * T(complex(-0.7459411454241821, -0.6660118674342517))})
	col13 := fft5([5]T{row0[13], row1[13] * T(complex(0.7939903986478353, -0.6079302976946055)), row2[13] * T(complex(0.2608415062898968, -0.9653816388332739)), row3[13] * T(complex(-0.379779095521801, -0.925077206834458)), row4[13] * T(complex(-0.8639234171928355, -0.5036232016357606))})
	col14 := fft5([5]T{row0[14], row1[14] * T(complex(0.7624425110114479, -0.6470559615694442)), row2[14] * T(complex(0.16263716519488372, -0.986685944207868)), row3[14] * T(complex(-0.5144395337815065, -0.8575266561936522)), row4[14] * T(complex(-0.9470983049947442, -0.3209436098072097))})
	col15 := fft5([5]T{row0[15], row1[15] * T(complex(0.7289686274214116, -0.6845471059286886)), row2[15] * T(complex(0.06279051952931353, -0.9980267284282716)), row3[15] * T(complex(-0.6374239897486897, -0.7705132427757893)), row4[15] * T(complex(-0.9921147013144778, -0.12533323356430454))})
	col16 := fft5([5]T{row0[16], row1[16] * T(complex(0.6936533058128049, -0.7203090248879069)), row2[16] * T(complex(-0.037690182669934576, -0.9992894726405892)), row3[16] * T(complex(-0.7459411454241821, -0.6660118674342517)), row4[16] * T(complex(-0.9971589002606139, 0.07532680552793279))})
	col17 := fft5([5]T{row0[17], row1[17] * T(complex(0.6565857557529564, -0.7542513807361038)), row2[17] * T(complex(-0.13779029068463805, -0.9904614256966512)), row3[17] * T(complex(-0.8375280400421417, -0.5463943467342692)), row4[17] * T(complex(-0.9620276715860859, 0.2729519355173252))})
	col18 := fft5([5]T{row0[18], row1[18] * T(complex(0.6178596130903343, -0.7862884321366189)), row2[18] * T(complex(-0.23649899702372465, -0.971631732914674)), row3[18] * T(complex(-0.9101059706849957, -0.4143755809932843)), row4[18] * T(complex(-0.8881364488135446, 0.45957986062148776))})
	col19 := fft5([5]T{row0[19], row1[19] * T(complex(0.5775727034222676, -0.8163392507171839)), row2[19] * T(complex(-0.33281954452298657, -0.9429905358928645)), row3[19] * T(complex(-0.9620276715860858, -0.27295193551732544)), row4[19] * T(complex(-0.7784623015670236, 0.6276913612907004))})
	col20 := fft5([5]T{row0[20], row1[20] * T(complex(0.5358267949789965, -0.8443279255020151)), row2[20] * T(complex(-0.4257792915650727, -0.9048270524660195)), row3[20] * T(complex(-0.9921147013144778, -0.12533323356430454)), row4[20] * T(complex(-0.6374239897486895, 0.7705132427757894))})
	col21 := fft5([5]T{row0[21], row1[21] * T(complex(0.49272734154829156, -0.8701837546695257)), row2[21] * T(complex(-0.5144395337815065, -0.8575266561936522)), row3[21] * T(complex(-0.9996841892832999, 0.02513009544333757)), row4[21] * T(complex(-0.47070393216533246, 0.8822912264349534))})
	col22 := fft5([5]T{row0[22], row1[22] * T(complex(0.44838321609003245, -0.8938414241512637)), row2[22] * T(complex(-0.5979049830575185, -0.8015669848708769)), row3[22] * T(complex(-0.9845643345292053, 0.1750230589752761)), row4[22] * T(complex(-0.28501926246997694, 0.9585217890173756))})
	col23 := fft5([5]T{row0[23], row1[23] * T(complex(0.4029064357136627, -0.9152411726209175)), row2[23] * T(complex(-0.6753328081210245, -0.7375131173581739)), row3[23] * T(complex(-0.9470983049947443, 0.3209436098072095)), row4[23] * T(complex(-0.08785119655074321, 0.9961336091431725))})
	col24 := fft5([5]T{row0[24], row1[24] * T(complex(0.35641187871325075, -0.934328942456612)), row2[24] * T(complex(-0.7459411454241821, -0.6660118674342517)), row3[24] * T(complex(-0.8881364488135446, 0.45957986062148776)), row4[24] * T(complex(0.11285638487348157, 0.9936113105200084))})
	return [125]T{col0[0], col1[0], col2[0], col3[0], col4[0], col5[0], col6[0], col7[0], col8[0], col9[0], col10[0], col11[0], col12[0], col13[0], col14[0], col15[0], col16[0], col17[0], col18[0], col19[0], col20[0], col21[0], col22[0], col23[0], col24[0], col0[1], col1[1], col2[1], col3[1], col4[1], col5[1], col6[1], col7[1], col8[1], col9[1], col10[1], col11[1], col12[1], col13[1], col14[1], col15[1], col16[1], col17[1], col18[1], col19[1], col20[1], col21[1], col22[1], col23[1], col24[1], col0[2], col1[2], col2[2], col3[2], col4[2], col5[2], col6[2], col7[2], col8[2], col9[2], col10[2], col11[2], col12[2], col13[2], col14[2], col15[2], col16[2], col17[2], col18[2], col19[2], col20[2], col21[2], col22[2], col23[2], col24[2], col0[3], col1[3], col2[3], col3[3], col4[3], col5[3], col6[3], col7[3], col8[3], col9[3], col10[3], col11[3], col12[3], col13[3], col14[3], col15[3], col16[3], col17[3], col18[3], col19[3], col20[3], col21[3], col22[3], col23[3], col24[3], col0[4], col1[4], col2[4], col3[4], col4[4], col5[4], col6[4], col7[4], col8[4], col9[4], col10[4], col11[4], col12[4], col13[4], col14[4], col15[4], col16[4], col17[4], col18[4], col19[4], col20[4], col21[4], col22[4], col23[4], col24[4]}
}

