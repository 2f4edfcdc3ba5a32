/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package binomialbounds

// The equivalent tables hold, for every sample count k in [0, 120] and every
// numStdDevs in {1, 2, 3}, the real-valued number of standard deviations that
// makes the continuity-corrected gaussian bound agree with the exact binomial
// tail bound in the limit of a vanishing sampling probability.
//
// Entries are laid out three per k, so the value for (k, numStdDevs) lives at
// index 3*k + (numStdDevs-1).

const (
	maxEquivTableSamples = 120
	equivTableLen        = 3 * (maxEquivTableSamples + 1)
)

// lbEquivTable is read by the lower bound of the skewed regime.
var lbEquivTable = [equivTableLen]float64{
	1.0, 2.0, 3.0, // placeholders, k = 0 is never looked up
	0.78733700071624246, 3.1442674976509331, 13.56787403986695, // k = 1
	0.94091377532268194, 2.6469926574229841, 6.2930271865927905, // k = 2
	0.96869127052185888, 2.4653167638589317, 4.9737528448484136, // k = 3
	0.97933571009133513, 2.374188087680523, 4.4489997658421698, // k = 4
	0.98479164089752491, 2.3186311516658265, 4.1671237894931012, // k = 5
	0.98806032043521608, 2.2807553549444095, 3.990105561546792, // k = 6
	0.99021895262201642, 2.2530200479695113, 3.8678447780967957, // k = 7
	0.99174265149322838, 2.2316810210167319, 3.7778489649895071, // k = 8
	0.99287146224246114, 2.214658974166448, 3.7085193301332886, // k = 9
	0.99373898422255269, 2.2007015365646851, 3.6532602828410492, // k = 10
	0.99442517022461263, 2.1890064953600348, 3.6080381689013636, // k = 11
	0.99498065049649098, 2.1790345605723274, 3.5702432941209321, // k = 12
	0.99543897240005397, 2.1704088128035428, 3.5381098080604212, // k = 13
	0.99582320504063837, 2.1628572508456174, 3.5103983585143013, // k = 14
	0.99614971141245756, 2.1561782591250811, 3.48621228980099, // k = 15
	0.99643040672139049, 2.1502189563304932, 3.4648860418008418, // k = 16
	0.99667416521001595, 2.1448611264586663, 3.4459146441252919, // k = 17
	0.99688772683612525, 2.1400117923884809, 3.4289076391611815, // k = 18
	0.99707629905337358, 2.1355967299349192, 3.4135580771234095, // k = 19
	0.9972439666246451, 2.13155590007996, 3.3996211146772382, // k = 20
	0.99739397710227407, 2.1278401653269694, 3.38689890770249, // k = 21
	0.99752894374086531, 2.124408885651798, 3.3752297331015941, // k = 22
	0.99765099234359222, 2.1212281294049995, 3.3644800156359214, // k = 23
	0.99776186926936339, 2.1182693221051982, 3.3545383901709305, // k = 24
	0.99786302204614552, 2.1155082122495821, 3.3453112156593416, // k = 25
	0.99795566034519778, 2.1129240701059273, 3.3367191413889619, // k = 26
	0.99804080266502626, 2.1104990600859983, 3.3286944472053781, // k = 27
	0.99811931247488328, 2.1082177440740129, 3.3211789606892461, // k = 28
	0.99819192648612443, 2.1060666846942766, 3.3141224097311488, // k = 29
	0.99825927697632366, 2.1040341256606596, 3.3074811074096733, // k = 30
	0.9983219095724154, 2.1021097321638695, 3.3012168931471733, // k = 31
	0.99838029753231627, 2.1002843784481082, 3.2952962734285616, // k = 32
	0.99843485330172232, 2.0985499727931516, 3.2896897193191563, // k = 33
	0.9984859379323362, 2.0968993123809847, 3.2843710882143342, // k = 34
	0.99853386880821571, 2.0953259622147677, 3.2793171447880671, // k = 35
	0.99857892602361154, 2.0938241535300901, 3.2745071617312629, // k = 36
	0.99862135767842219, 2.0923886981055952, 3.2699225851086076, // k = 37
	0.9986613842991382, 2.0910149156214954, 3.2655467523844712, // k = 38
	0.99869920254883116, 2.0896985717875065, 3.2613646536384562, // k = 39
	0.99873498835576169, 2.088435825407819, 3.2573627283997113, // k = 40
	0.99876889956393211, 2.0872231829005639, 3.2535286920148336, // k = 41
	0.99880107818847841, 2.0860574590653398, 3.2498513866287988, // k = 42
	0.99883165234280258, 2.0849357431117306, 3.2463206527773658, // k = 43
	0.99886073789172869, 2.0838553691370367, 3.2429272183191662, // k = 44
	0.99888843987496534, 2.0828138903823299, 3.2396626020185848, // k = 45
	0.99891485373717648, 2.0818090567097851, 3.2365190295588402, // k = 46
	0.99894006639456301, 2.0808387948367248, 3.2334893601428454, // k = 47
	0.99896415716269638, 2.0799011909372789, 3.2305670221464644, // k = 48
	0.99898719856616858, 2.0789944752844636, 3.2277459565392208, // k = 49
	0.99900925704721188, 2.0781170086564766, 3.2250205669927783, // k = 50
	0.99903039358766632, 2.0772672702731709, 3.222385675766489, // k = 51
	0.99905066425638001, 2.0764438470637243, 3.2198364845989897, // k = 52
	0.99907012069224488, 2.0756454240957223, 3.2173685399508001, // k = 53
	0.99908881053150744, 2.0748707760203362, 3.2149777020394943, // k = 54
	0.99910677778669721, 2.0741187594088291, 3.2126601171898637, // k = 55
	0.99912406318343006, 2.073388305872923, 3.2104121930893359, // k = 56
	0.99914070446044023, 2.0726784158762275, 3.2082305765960744, // k = 57
	0.99915673663742943, 2.0719881531563535, 3.2061121337955041, // k = 58
	0.99917219225468112, 2.0713166396879004, 3.2040539320419565, // k = 59
	0.9991871015878464, 2.0706630511255599, 3.2020532237569794, // k = 60
	0.99920149284084292, 2.0700266126742846, 3.2001074317855598, // k = 61
	0.99921539231942258, 2.0694065953401282, 3.198214136136948, // k = 62
	0.99922882458762385, 2.0688023125210537, 3.1963710619585597, // k = 63
	0.99924181260904421, 2.0682131169019575, 3.1945760686101998, // k = 64
	0.99925437787461724, 2.0676383976224026, 3.1928271397220329, // k = 65
	0.99926654051837416, 2.0670775776892669, 3.1911223741336845, // k = 66
	0.9992783194224838, 2.0665301116097101, 3.189459977624002, // k = 67
	0.99928973231270957, 2.0659954832226837, 3.1878382553515019, // k = 68
	0.99930079584528597, 2.0654732037096299, 3.1862556049347122, // k = 69
	0.99931152568610004, 2.0649628097671768, 3.1847105101095918, // k = 70
	0.99932193658295854, 2.0644638619264883, 3.1832015349082141, // k = 71
	0.99933204243163543, 2.0639759430055999, 3.1817273183090045, // k = 72
	0.99934185633631212, 2.0634986566824942, 3.1802865693142177, // k = 73
	0.99935139066495893, 2.0630316261779744, 3.1788780624150386, // k = 74
	0.99936065710014177, 2.0625744930385004, 3.1775006334088802, // k = 75
	0.99936966668569105, 2.062126916010167, 3.1761531755371157, // k = 76
	0.99937842986961678, 2.06168856999588, 3.1748346359147255, // k = 77
	0.99938695654361875, 2.0612591450885804, 3.1735440122262397, // k = 78
	0.99939525607950197, 2.0608383456740569, 3.172280349664891, // k = 79
	0.99940333736277498, 2.0604258895975183, 3.1710427380941728, // k = 80
	0.99941120882368339, 2.0600215073886483, 3.1698303094130256, // k = 81
	0.99941887846590149, 2.0596249415403651, 3.1686422351076575, // k = 82
	0.9994263538930872, 2.0592359458369489, 3.1674777239746388, // k = 83
	0.99943364233348231, 2.0588542847276017, 3.1663360200013257, // k = 84
	0.9994407506627232, 2.0584797327418585, 3.1652164003909729, // k = 85
	0.99944768542501339, 2.0581120739435939, 3.1641181737210435, // k = 86
	0.99945445285279133, 2.057751101420652, 3.1630406782242644, // k = 87
	0.99946105888501746, 2.0573966168073921, 3.1619832801829033, // k = 88
	0.99946750918419303, 2.0570484298376734, 3.1609453724275909, // k = 89
	0.99947380915220962, 2.0567063579260156, 3.1599263729327611, // k = 90
	0.99947996394512451, 2.0563702257748688, 3.1589257235014743, // k = 91
	0.99948597848694309, 2.0560398650060874, 3.1579428885329905, // k = 92
	0.99949185748248803, 2.0557151138148733, 3.1569773538670427, // k = 93
	0.9994976054294219, 2.0553958166445891, 3.1560286256992347, // k = 94
	0.99950322662948987, 2.05508182388097, 3.1550962295624765, // k = 95
	0.99950872519903911, 2.0547729915643864, 3.1541797093697665, // k = 96
	0.99951410507886995, 2.0544691811189146, 3.1532786265140165, // k = 97
	0.99951937004346603, 2.054170259097067, 3.1523925590209578, // k = 98
	0.99952452370965006, 2.0538760969391254, 3.1515211007514812, // k = 99
	0.99952956954470562, 2.0535865707461056, 3.1506638606500443, // k = 100
	0.99953451087400313, 2.0533015610654459, 3.1498204620360508, // k = 101
	0.99953935088816515, 2.0530209526885921, 3.1489905419353286, // k = 102
	0.99954409264980204, 2.0527446344597058, 3.1481737504490694, // k = 103
	0.99954873909984976, 2.05247249909478, 3.1473697501577762, // k = 104
	0.99955329306353435, 2.0522044430105053, 3.1465782155579518, // k = 105
	0.99955775725599083, 2.0519403661622673, 3.1457988325294379, // k = 106
	0.99956213428755769, 2.0516801718907098, 3.145031297831451, // k = 107
	0.99956642666877005, 2.0514237667763324, 3.1442753186255157, // k = 108
	0.9995706368150703, 2.0511710605016327, 3.1435306120236199, // k = 109
	0.99957476705125492, 2.0509219657203337, 3.1427969046600346, // k = 110
	0.99957881961567485, 2.0506763979332727, 3.1420739322853497, // k = 111
	0.99958279666420524, 2.0504342753705522, 3.1413614393813893, // k = 112
	0.99958670027399787, 2.0501955188795873, 3.1406591787957376, // k = 113
	0.99959053244703211, 2.0499600518187013, 3.1399669113947262, // k = 114
	0.99959429511347531, 2.0497277999559493, 3.1392844057337803, // k = 115
	0.99959799013486483, 2.0494986913728703, 3.1386114377441192, // k = 116
	0.99960161930712277, 2.0492726563728851, 3.1379477904348589, // k = 117
	0.99960518436341361, 2.0490496273940804, 3.1372932536096307, // k = 118
	0.99960868697685423, 2.0488295389261286, 3.1366476235968972, // k = 119
	0.99961212876308447, 2.0486123274311221, 3.1360107029931843, // k = 120
}

// ubEquivTable is read by the upper bound of the skewed regime.
var ubEquivTable = [equivTableLen]float64{
	1.0, 2.0, 3.0, // placeholders, k = 0 is never looked up
	0.99067762078645139, 1.7546051799429265, 2.4805562634750511, // k = 1
	0.99270517844656658, 1.7885595828951093, 2.538638354439803, // k = 2
	0.99402034459695199, 1.8104728677016453, 2.5781167691203062, // k = 3
	0.99492608190272025, 1.8262592813441691, 2.6075955166848686, // k = 4
	0.99558654775526345, 1.8383916165510317, 2.6308681308499571, // k = 5
	0.99608982417028735, 1.8481239933088556, 2.6499371380826671, // k = 6
	0.99648649602145289, 1.8561737297358554, 2.6659848692677857, // k = 7
	0.99680753321500448, 1.8629865595395685, 2.6797654175998211, // k = 8
	0.99707293234057637, 1.8688568402426142, 2.6917878327005962, // k = 9
	0.99729618038111911, 1.8739882622215216, 2.7024110717197694, // k = 10
	0.99748670765975656, 1.8785270989865139, 2.711897179378687, // k = 11
	0.99765130980307726, 1.8825816083170164, 2.7204429303565076, // k = 12
	0.99779501044147179, 1.8862339436795426, 2.7281995953593876, // k = 13
	0.99792160535955032, 1.8895477800928719, 2.7352857929797554, // k = 14
	0.99803401739543252, 1.8925733707617636, 2.7417961313869816, // k = 15
	0.99813453472278302, 1.8953510017665585, 2.7478071876423322, // k = 16
	0.99822497494583662, 1.8979134138692366, 2.7533817481684415, // k = 17
	0.9983068006595639, 1.9002875387623759, 2.758571881388705, // k = 18
	0.9983812024607992, 1.9024957686227408, 2.7634212066616968, // k = 19
	0.99844915964411129, 1.9045569007887122, 2.7679665980710046, // k = 20
	0.99851148529329403, 1.9064868517549842, 2.77223948314629, // k = 21
	0.99856886026527392, 1.9082992044359788, 2.7762668462382663, // k = 22
	0.99862185913896029, 1.9100056329806905, 2.7800720132049661, // k = 23
	0.99867097026588136, 1.9116162363516078, 2.7836752718952806, // k = 24
	0.99871661143285606, 1.9131398030249103, 2.7870943677658624, // k = 25
	0.99875914221996043, 1.9145840230626012, 2.7903449034365839, // k = 26
	0.998798873841372, 1.915955659528052, 2.7934406635541982, // k = 27
	0.99883607704889343, 1.9172606881733367, 2.7963938810081679, // k = 28
	0.99887098852994849, 1.9185044121331634, 2.7992154566775831, // k = 29
	0.99890381612507428, 1.9196915567591577, 2.8019151420487516, // k = 30
	0.99893474311200869, 1.9208263485460841, 2.8045016919336652, // k = 31
	0.99896393174598175, 1.9219125812192941, 2.8069829929359851, // k = 32
	0.9989915262029686, 1.9229536713876023, 2.8093661721107517, // k = 33
	0.99901765504042161, 1.9239527056597272, 2.8116576893457363, // k = 34
	0.99904243326552111, 1.924912480734019, 2.8138634162838976, // k = 35
	0.99906596408225068, 1.9258355376706153, 2.8159887040554623, // k = 36
	0.99908834037414551, 1.9267241913207702, 2.8180384416564865, // k = 37
	0.99910964596832808, 1.9275805557040024, 2.8200171064701509, // k = 38
	0.99912995671764859, 1.9284065659781016, 2.8219288081565068, // k = 39
	0.99914934143082135, 1.9292039975311424, 2.8237773269201316, // k = 40
	0.99916786267495061, 1.9299744826318601, 2.8255661469912945, // k = 41
	0.99918557747046233, 1.9307195249999776, 2.8272984860156085, // k = 42
	0.99920253789493718, 1.9314405125975473, 2.8289773209328706, // k = 43
	0.99921879160951266, 1.9321387288930851, 2.8306054108323786, // k = 44
	0.99923438231921946, 1.9328153628099494, 2.8321853171953508, // k = 45
	0.99924935017674965, 1.9334715175372759, 2.8337194218718134, // k = 46
	0.99926373213762021, 1.9341082183544187, 2.8352099430869311, // k = 47
	0.99927756227343911, 1.9347264195971383, 2.8366589497281605, // k = 48
	0.99929087204894174, 1.9353270108748943, 2.8380683741281896, // k = 49
	0.99930369056760293, 1.9359108226327943, 2.839440023528105, // k = 50
	0.99931604478991609, 1.9364786311384947, 2.8407755903795162, // k = 51
	0.99932795972782995, 1.9370311629631918, 2.8420766616226825, // k = 52
	0.9993394586183344, 1.9375690990163996, 2.8433447270592849, // k = 53
	0.99935056307876258, 1.9380930781862162, 2.8445811869228561, // k = 54
	0.99936129324602341, 1.9386037006299779, 2.8457873587365454, // k = 55
	0.99937166790167375, 1.9391015307543917, 2.8469644835364862, // k = 56
	0.99938170458448761, 1.9395870999192721, 2.8481137315292586, // k = 57
	0.99939141969195899, 1.9400609088947454, 2.8492362072435076, // k = 58
	0.9994008285719892, 1.9405234300981113, 2.8503329542285263, // k = 59
	0.99940994560585128, 1.9409751096333956, 2.8514049593463309, // k = 60
	0.99941878428338726, 1.9414163691538788, 2.8524531566983073, // k = 61
	0.99942735727127341, 1.9418476075655209, 2.8534784312227823, // k = 62
	0.99943567647509135, 1.9422692025871331, 2.8544816219957445, // k = 63
	0.99944375309585054, 1.9426815121813499, 2.8554635252633482, // k = 64
	0.99945159768153491, 1.9430848758688866, 2.856424897231677, // k = 65
	0.99945922017417721, 1.9434796159371943, 2.8573664566364894, // k = 66
	0.99946662995290825, 1.9438660385534134, 2.8582888871132393, // k = 67
	0.99947383587337901, 1.9442444347904775, 2.8591928393855284, // k = 68
	0.99948084630390643, 1.9446150815742789, 2.8600789332882641, // k = 69
	0.99948766915865728, 1.9449782425589905, 2.8609477596401343, // k = 70
	0.9994943119281503, 1.9453341689369108, 2.8617998819785266, // k = 71
	0.99950078170732659, 1.9456831001885502, 2.8626358381687305, // k = 72
	0.99950708522141152, 1.9460252647781193, 2.8634561418980748, // k = 73
	0.99951322884976845, 1.9463608807990578, 2.8642612840646469, // k = 74
	0.99951921864792548, 1.9466901565738011, 2.8650517340692923, // k = 75
	0.99952506036793509, 1.9470132912115792, 2.8658279410187908, // k = 76
	0.99953075947721326, 1.9473304751276808, 2.86659033484736, // k = 77
	0.99953632117598923, 1.9476418905272945, 2.8673393273629824, // k = 78
	0.99954175041348348, 1.9479477118567563, 2.8680753132244567, // k = 79
	0.99954705190292215, 1.9482481062247703, 2.8687986708545559, // k = 80
	0.99955223013548311, 1.948543233795941, 2.869509763294178, // k = 81
	0.99955728939326272, 1.9488332481587465, 2.8702089390019703, // k = 82
	0.99956223376134246, 1.9491182966698959, 2.8708965326034979, // k = 83
	0.99956706713902643, 1.9493985207768454, 2.8715728655936963, // k = 84
	0.99957179325031809, 1.9496740563200923, 2.8722382469960186, // k = 85
	0.99957641565369282, 1.9499450338167352, 2.8728929739814117, // k = 86
	0.99958093775122303, 1.9502115787266565, 2.87353733244999, // k = 87
	0.99958536279710508, 1.9504738117025762, 2.8741715975780444, // k = 88
	0.99958969390563224, 1.9507318488251206, 2.8747960343328129, // k = 89
	0.99959393405865715, 1.9509858018239581, 2.8754108979572344, // k = 90
	0.99959808611257961, 1.9512357782859704, 2.8760164344267465, // k = 91
	0.99960215280489606, 1.9514818818513477, 2.8766128808800175, // k = 92
	0.99960613676034216, 1.9517242123984297, 2.8772004660253532, // k = 93
	0.99961004049665692, 1.9519628662180508, 2.8777794105243988, // k = 94
	0.99961386642999706, 1.9521979361780841, 2.8783499273546167, // k = 95
	0.99961761688002437, 1.9524295118788342, 2.8789122221519241, // k = 96
	0.99962129407468969, 1.9526576797998727, 2.8794664935347623, // k = 97
	0.99962490015473493, 1.9528825234388698, 2.88001293341078, // k = 98
	0.99962843717793137, 1.9531041234429329, 2.8805517272672252, // k = 99
	0.99963190712307304, 1.953322557732927, 2.8810830544460631, // k = 100
	0.999635311893741, 1.9535379016212164, 2.8816070884047607, // k = 101
	0.9996386533218532, 1.9537502279232362, 2.8821239969636183, // k = 102
	0.99964193317101635, 1.953959607063271, 2.8826339425404628, // k = 103
	0.99964515313968927, 1.9541661071747978, 2.883137082373457, // k = 104
	0.99964831486417238, 1.9543697941957148, 2.8836335687327366, // k = 105
	0.99965141992143447, 1.954570731958768, 2.8841235491215325, // k = 106
	0.99965446983178441, 1.9547689822774545, 2.8846071664673887, // k = 107
	0.99965746606140182, 1.9549646050276717, 2.8850845593040519, // k = 108
	0.99966041002473094, 1.9551576582253571, 2.8855558619445674, // k = 109
	0.99966330308674933, 1.9553481981003515, 2.8860212046460778, // k = 110
	0.99966614656511799, 1.9555362791666997, 2.8864807137667987, // k = 111
	0.99966894173221976, 1.9557219542895921, 2.8869345119155976, // k = 112
	0.99967168981709298, 1.9559052747491321, 2.8873827180945963, // k = 113
	0.99967439200726727, 1.9560862903011125, 2.8878254478351706, // k = 114
	0.9996770494505054, 1.9562650492349569, 2.8882628133277128, // k = 115
	0.99967966325645974, 1.9564415984289891, 2.8886949235454908, // k = 116
	0.99968223449824434, 1.9566159834031704, 2.8891218843629169, // k = 117
	0.99968476421393171, 1.9567882483694434, 2.889543798668528, // k = 118
	0.99968725340797493, 1.9569584362798078, 2.889960766472953, // k = 119
	0.99968970305256188, 1.9571265888722511, 2.890372885012126, // k = 120
}

func equivTableIndex(numSamples int64, numStdDevs int) int {
	return 3*int(numSamples) + (numStdDevs - 1)
}

func lbEquivNumStdDevs(numSamples int64, numStdDevs int) float64 {
	return lbEquivTable[equivTableIndex(numSamples, numStdDevs)]
}

func ubEquivNumStdDevs(numSamples int64, numStdDevs int) float64 {
	return ubEquivTable[equivTableIndex(numSamples, numStdDevs)]
}
